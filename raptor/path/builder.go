package path

import "git.fiblab.net/sim/transitpath/raptor/model"

// Context holds the collaborators a Builder needs. Calculator and
// Constraints may be nil.
type Context struct {
	Slack       model.SlackProvider
	Calculator  model.CostCalculator
	Constraints model.TransferConstraintLookup
}

type node struct {
	Leg
	prev int32
	next int32
}

// Builder assembles one Path. Legs live in an arena slice linked by index, so
// both append directions share the same time-shift and cost passes. A Builder
// is single-use and not safe for concurrent use.
type Builder struct {
	ctx                    Context
	iterationDepartureTime int
	c2                     int

	// true: 从离站段开始向前插入；false: 从接驳段开始向后追加
	prepend bool
	nodes   []node
	head    int32
	tail    int32
	built   bool
}

// NewHeadPathBuilder appends legs in travel order, access first.
func NewHeadPathBuilder(ctx Context, iterationDepartureTime int) *Builder {
	return newBuilder(ctx, iterationDepartureTime, false)
}

// NewTailPathBuilder prepends legs against travel order, egress first.
func NewTailPathBuilder(ctx Context, iterationDepartureTime int) *Builder {
	return newBuilder(ctx, iterationDepartureTime, true)
}

func newBuilder(ctx Context, iterationDepartureTime int, prepend bool) *Builder {
	if ctx.Slack == nil {
		log.Panicf("path builder needs a slack provider")
	}
	return &Builder{
		ctx:                    ctx,
		iterationDepartureTime: iterationDepartureTime,
		c2:                     model.NOT_SET,
		prepend:                prepend,
		nodes:                  make([]node, 0, 8),
		head:                   NONE,
		tail:                   NONE,
	}
}

func (b *Builder) Access(access model.AccessEgress) *Builder {
	b.add(Leg{kind: ACCESS, fromStop: NO_STOP, toStop: access.Stop(), street: access})
	return b
}

func (b *Builder) Transit(trip model.TripSchedule, ba model.BoardAndAlightTime) *Builder {
	p := trip.Pattern()
	b.add(Leg{
		kind:          TRANSIT,
		fromStop:      p.StopIndex(ba.BoardStopPos),
		toStop:        p.StopIndex(ba.AlightStopPos),
		fromTime:      ba.BoardTime,
		toTime:        ba.AlightTime,
		trip:          trip,
		boardStopPos:  ba.BoardStopPos,
		alightStopPos: ba.AlightStopPos,
	})
	return b
}

// Transfer adds a transfer ending at toStop. The start stop is the end stop
// of the previous leg.
func (b *Builder) Transfer(transfer model.Transfer, toStop int) *Builder {
	b.add(Leg{kind: TRANSFER, fromStop: NO_STOP, toStop: toStop, transfer: transfer})
	return b
}

func (b *Builder) Egress(egress model.AccessEgress) *Builder {
	b.add(Leg{kind: EGRESS, fromStop: egress.Stop(), toStop: NO_STOP, street: egress})
	return b
}

func (b *Builder) C2(c2 int) *Builder {
	b.c2 = c2
	return b
}

func (b *Builder) add(l Leg) {
	if b.built {
		log.Panicf("add %v leg after build", l.kind)
	}
	i := int32(len(b.nodes))
	n := node{Leg: l, prev: NONE, next: NONE}
	switch {
	case b.head == NONE:
		b.head, b.tail = i, i
	case b.prepend:
		n.next = b.head
		b.nodes[b.head].prev = i
		b.head = i
	default:
		n.prev = b.tail
		b.nodes[b.tail].next = i
		b.tail = i
	}
	b.nodes = append(b.nodes, n)
}

// Build finalizes timing, transfer constraints and cost and returns the Path.
// It panics when the legs do not form access, (transit|transfer)*, egress, or
// when called twice.
func (b *Builder) Build() *Path {
	if b.built {
		log.Panicf("path already built")
	}
	b.built = true
	b.validate()
	b.timeShift()
	b.attachConstraints()
	b.materializeCost()

	legs := make([]Leg, 0, len(b.nodes))
	for i := b.head; i != NONE; i = b.nodes[i].next {
		legs = append(legs, b.nodes[i].Leg)
	}
	return newPath(b.iterationDepartureTime, legs, b.c2)
}

// 检查段类型顺序与站点连续性，补全换乘段的起点
func (b *Builder) validate() {
	if b.head == NONE || b.nodes[b.head].kind != ACCESS {
		log.Panicf("path has no access leg")
	}
	if b.nodes[b.tail].kind != EGRESS || b.head == b.tail {
		log.Panicf("path has no egress leg")
	}
	for i := b.nodes[b.head].next; i != NONE; i = b.nodes[i].next {
		n := &b.nodes[i]
		prev := &b.nodes[n.prev]
		if n.kind == ACCESS || (n.kind == EGRESS && i != b.tail) {
			log.Panicf("unexpected %v leg in the middle of a path", n.kind)
		}
		if n.kind == TRANSFER {
			n.fromStop = prev.toStop
			continue
		}
		if n.fromStop != prev.toStop {
			log.Panicf("%v leg starts at stop %d, previous %v leg ends at stop %d", n.kind, n.fromStop, prev.kind, prev.toStop)
		}
	}
}

// 乘车段时间固定；接驳段尽量晚出发，换乘段和离站段紧接上一段的到站时间
func (b *Builder) timeShift() {
	for i := b.head; i != NONE; i = b.nodes[i].next {
		n := &b.nodes[i]
		switch n.kind {
		case ACCESS:
			b.timeShiftAccess(n)
		case TRANSFER:
			from := b.stopArrivalTime(n.prev)
			n.fromTime, n.toTime = from, from+n.transfer.DurationInSeconds()
		case EGRESS:
			b.timeShiftEgress(n)
		}
	}
}

func (b *Builder) timeShiftAccess(n *node) {
	access := n.street
	transit := b.nextTransit(b.head)
	if transit == NONE {
		// 无乘车段，从迭代出发时间开始
		from := access.EarliestDepartureTime(b.iterationDepartureTime)
		if from == model.TIME_NOT_SET {
			log.Panicf("access %v can not depart after %s", access, model.TimeToStr(b.iterationDepartureTime))
		}
		n.fromTime, n.toTime = from, from+access.DurationInSeconds()
		return
	}
	t := &b.nodes[transit]
	to := t.fromTime - b.ctx.Slack.BoardSlack(t.trip.Pattern().SlackIndex())
	if access.HasRides() {
		to -= b.ctx.Slack.TransferSlack()
	}
	if next := &b.nodes[n.next]; next.kind == TRANSFER {
		to -= next.transfer.DurationInSeconds()
	}
	to = access.LatestArrivalTime(to)
	if to == model.TIME_NOT_SET {
		log.Panicf("access %v can not arrive before boarding %s at %s", access, t.trip.Pattern().DebugInfo(), model.TimeToStr(t.fromTime))
	}
	n.fromTime, n.toTime = to-access.DurationInSeconds(), to
}

func (b *Builder) timeShiftEgress(n *node) {
	egress := n.street
	from := b.stopArrivalTime(n.prev)
	if egress.HasRides() {
		from += b.ctx.Slack.TransferSlack()
	}
	from = egress.EarliestDepartureTime(from)
	if from == model.TIME_NOT_SET {
		log.Panicf("egress %v can not depart after %s", egress, model.TimeToStr(b.stopArrivalTime(n.prev)))
	}
	n.fromTime, n.toTime = from, from+egress.DurationInSeconds()
}

// 到站时间，乘车段包含下车slack
func (b *Builder) stopArrivalTime(i int32) int {
	n := &b.nodes[i]
	if n.kind == TRANSIT {
		return n.toTime + b.ctx.Slack.AlightSlack(n.trip.Pattern().SlackIndex())
	}
	return n.toTime
}

func (b *Builder) nextTransit(i int32) int32 {
	for i = b.nodes[i].next; i != NONE; i = b.nodes[i].next {
		if b.nodes[i].kind == TRANSIT {
			return i
		}
	}
	return NONE
}

func (b *Builder) prevTransit(i int32) int32 {
	for i = b.nodes[i].prev; i != NONE; i = b.nodes[i].prev {
		if b.nodes[i].kind == TRANSIT {
			return i
		}
	}
	return NONE
}

// 相邻两个乘车段之间查询换乘约束，挂在前一个乘车段上
func (b *Builder) attachConstraints() {
	if b.ctx.Constraints == nil {
		return
	}
	for i := b.head; i != NONE; i = b.nodes[i].next {
		to := &b.nodes[i]
		if to.kind != TRANSIT {
			continue
		}
		if p := b.prevTransit(i); p != NONE {
			from := &b.nodes[p]
			from.constraint = b.ctx.Constraints.FindConstrainedTransfer(from.trip, from.alightStopPos, to.trip, to.boardStopPos)
		}
	}
}

func (b *Builder) materializeCost() {
	calc := b.ctx.Calculator
	if calc == nil {
		return
	}
	for i := b.head; i != NONE; i = b.nodes[i].next {
		n := &b.nodes[i]
		switch n.kind {
		case ACCESS:
			n.c1 = n.street.C1()
		case TRANSFER:
			n.c1 = n.transfer.C1()
		case TRANSIT:
			n.c1 = b.transitCost(calc, i)
		case EGRESS:
			n.c1 = calc.WaitCost(n.fromTime-b.stopArrivalTime(n.prev)) + calc.CostEgress(n.street)
		}
	}
}

func (b *Builder) transitCost(calc model.CostCalculator, i int32) int {
	n := &b.nodes[i]
	prev := &b.nodes[n.prev]
	constraint := model.CONSTRAINT_REGULAR
	if p := b.prevTransit(i); p != NONE {
		constraint = b.nodes[p].constraint.TransferConstraint()
	}
	firstBoarding := prev.kind == ACCESS && !prev.street.HasRides()
	boardCost := calc.BoardingCost(firstBoarding, b.stopArrivalTime(n.prev), n.fromStop, n.fromTime, n.trip, constraint)
	return calc.TransitArrivalCost(
		boardCost,
		b.ctx.Slack.AlightSlack(n.trip.Pattern().SlackIndex()),
		n.toTime-n.fromTime,
		n.trip,
		n.toStop,
	)
}
