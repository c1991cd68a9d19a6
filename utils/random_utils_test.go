package utils

import (
	"regexp"
	"testing"
)

func TestRandomDigitCode(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{6}$`)

	// 多次生成，确认长度和字符集稳定，前导零不被丢弃
	for i := 0; i < 100; i++ {
		code, err := RandomDigitCode(6)
		if err != nil {
			t.Fatalf("生成验证码失败: %v", err)
		}
		if !pattern.MatchString(code) {
			t.Fatalf("验证码应为6位数字: %q", code)
		}
	}
}

func TestRandomDigitCodeLengths(t *testing.T) {
	for _, length := range []int{1, 4, 8} {
		code, err := RandomDigitCode(length)
		if err != nil {
			t.Fatalf("生成验证码失败: %v", err)
		}
		if len(code) != length {
			t.Errorf("length=%d: got %q", length, code)
		}
	}
}
