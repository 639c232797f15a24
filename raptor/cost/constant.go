package cost

import "errors"

const (
	// 代价单位换算：1秒 = 100 raptor cost
	COST_PER_SECOND = 100

	// 默认参数（秒）
	DEFAULT_BOARD_COST      = 600
	DEFAULT_TRANSFER_COST   = 0
	DEFAULT_WAIT_RELUCTANCE = 1.0
	// 默认乘车reluctance（未配置分类时）
	DEFAULT_TRANSIT_RELUCTANCE = 1.0

	// 默认无障碍惩罚（秒）
	DEFAULT_UNKNOWN_ACCESSIBILITY_COST = 10 * 60
	DEFAULT_INACCESSIBLE_COST          = 60 * 60

	// 放宽比例的取值范围
	MIN_RELAX_RATIO = 1.0
	MAX_RELAX_RATIO = 4.0
)

var (
	// 错误：代价参数不合法
	ErrInvalidParams = errors.New("invalid cost parameters")
	// 错误：线性函数格式错误，应为"a + b x"
	ErrInvalidLinearFunction = errors.New("invalid linear function, should be like \"5m + 1.5 x\"")
	// 错误：放宽函数参数超出范围
	ErrInvalidRelaxFunction = errors.New("invalid relax function")
)
