package summarizer

import "errors"

var (
	// ErrInvalidInput 输入消息未按时间非降序排列，属于调用方编程错误
	ErrInvalidInput = errors.New("输入消息未按时间排序")

	// ErrNoBackendAvailable 所有后端尝试失败或不可用，后端链的终态错误
	ErrNoBackendAvailable = errors.New("所有摘要后端均不可用")

	// ErrEmptyInput 摘要输入为空
	ErrEmptyInput = errors.New("摘要输入为空")

	// ErrModelUnavailable 本地模型端点未配置或未就绪
	ErrModelUnavailable = errors.New("本地模型不可用")

	// ErrInference 本地模型推理失败
	ErrInference = errors.New("本地模型推理失败")

	// 消息源失败分类，属于请求级错误而非后端失败
	ErrPermissionDenied = errors.New("无权限读取群聊消息")
	ErrChannelNotFound  = errors.New("群聊不存在")
)
