package model

import "errors"

const (
	// 不可达时间（如接驳不在营业时间内）
	TIME_NOT_SET = -2_000_000_000
	// 未设置的整数值（如C2）
	NOT_SET = -999_999_999

	// 一天的秒数
	SECONDS_PER_DAY = 24 * 3600
)

var (
	// 错误：时间格式错误
	ErrInvalidTime = errors.New("invalid time, should be HH:MM or HH:MM:SS")
)
