package path

const (
	// 无站点（接驳段的起点、离站段的终点）
	NO_STOP = -1

	// 数组链表中的空下标
	NONE int32 = -1

	// 比较器最多由5个指标组成
	MAX_CRITERIA = 5
)

// 路径段类型
type LegKind uint8

const (
	ACCESS LegKind = iota
	TRANSIT
	TRANSFER
	EGRESS
)

func (k LegKind) String() string {
	switch k {
	case ACCESS:
		return "ACCESS"
	case TRANSIT:
		return "TRANSIT"
	case TRANSFER:
		return "TRANSFER"
	case EGRESS:
		return "EGRESS"
	default:
		return "UNKNOWN"
	}
}
