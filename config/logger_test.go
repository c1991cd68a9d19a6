package config

import "testing"

func TestLogHelpersBeforeSetup(t *testing.T) {
	// 未初始化时三个级别都必须可用，不能空指针崩溃
	InfoLogger, WarningLogger, ErrorLogger = nil, nil, nil

	Info("信息 %d", 1)
	Warning("警告 %d", 2)
	Error("错误 %d", 3)
}

func TestSetupLogger(t *testing.T) {
	if err := SetupLogger(); err != nil {
		t.Fatalf("初始化日志配置失败: %v", err)
	}
	if InfoLogger == nil || WarningLogger == nil || ErrorLogger == nil {
		t.Error("初始化后三个级别的日志记录器都应就绪")
	}

	Info("信息 %d", 1)
	Warning("警告 %d", 2)
	Error("错误 %d", 3)
}
