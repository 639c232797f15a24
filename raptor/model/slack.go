package model

import "github.com/samber/lo"

// SlackProvider gives the minimum time buffers around boarding and alighting.
type SlackProvider interface {
	BoardSlack(slackIndex int) int
	AlightSlack(slackIndex int) int
	TransferSlack() int
}

// Slack holds board and alight slack per slack index. An index past the end
// of the table uses the last entry.
type Slack struct {
	Transfer int   `yaml:"transfer"`
	Board    []int `yaml:"board"`
	Alight   []int `yaml:"alight"`
}

// 所有slack分组共用同一组值
func NewSlack(transferSlack, boardSlack, alightSlack int) *Slack {
	return &Slack{Transfer: transferSlack, Board: []int{boardSlack}, Alight: []int{alightSlack}}
}

func (s *Slack) BoardSlack(slackIndex int) int {
	return slackAt(s.Board, slackIndex)
}

func (s *Slack) AlightSlack(slackIndex int) int {
	return slackAt(s.Alight, slackIndex)
}

func (s *Slack) TransferSlack() int {
	return s.Transfer
}

func slackAt(table []int, i int) int {
	if len(table) == 0 {
		return 0
	}
	return table[lo.Clamp(i, 0, len(table)-1)]
}
