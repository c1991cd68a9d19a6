package services

import (
	"fmt"
	"net/smtp"

	"candyshop-http-service/config"
)

// InterfaceEmailService 定义邮件服务接口
type InterfaceEmailService interface {
	SendResetPasswordEmail(toEmail, resetToken string) error
}

// EmailService 通过SMTP发送系统邮件
type EmailService struct {
	Config *config.Config
}

// NewEmailService 创建一个新的邮件服务
func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{Config: cfg}
}

// SendResetPasswordEmail 发送密码重置验证码。
// SMTP未配置时降级为日志输出，方便本地开发
func (s *EmailService) SendResetPasswordEmail(toEmail, resetToken string) error {
	if s.Config.SMTPHost == "" {
		config.Warning("SMTP未配置，重置码仅输出到日志: email=%s token=%s", toEmail, resetToken)
		return nil
	}

	subject := "Candy Shop - 密码重置验证码"
	body := fmt.Sprintf(
		"您好，\r\n\r\n"+
			"您刚刚申请重置 Candy Shop 账户密码。\r\n\r\n"+
			"您的验证码是: %s\r\n\r\n"+
			"验证码将在15分钟后失效。\r\n\r\n"+
			"如果这不是您本人的操作，请忽略此邮件。\r\n\r\n"+
			"Candy Shop Team",
		resetToken)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s",
		s.Config.SMTPFrom, toEmail, subject, body))

	var auth smtp.Auth
	if s.Config.SMTPUsername != "" {
		auth = smtp.PlainAuth("", s.Config.SMTPUsername, s.Config.SMTPPassword, s.Config.SMTPHost)
	}

	if err := smtp.SendMail(s.Config.GetSMTPAddr(), auth, s.Config.SMTPFrom, []string{toEmail}, msg); err != nil {
		return fmt.Errorf("发送邮件失败: %w", err)
	}

	config.Info("重置邮件已发送至: %s", toEmail)
	return nil
}
