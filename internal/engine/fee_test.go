package engine_test

import (
	"testing"

	"github.com/blues/cfe/internal/engine"
	"github.com/stretchr/testify/assert"
)

func TestSplitFee(t *testing.T) {
	tests := []struct {
		name    string
		amount  int64
		bps     int64
		wantFee int64
		wantNet int64
	}{
		{"2.5%整除", 1000, 250, 25, 975},
		{"向下取整", 999, 250, 24, 975},
		{"零费率", 1000, 0, 0, 1000},
		{"满额费率", 1000, 10000, 1000, 0},
		{"一个基点", 10000, 1, 1, 9999},
		{"小额不足一基点", 10, 250, 0, 10},
		{"零金额", 0, 250, 0, 0},
		{"负金额不拆分", -5, 250, 0, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee, net := engine.SplitFee(tt.amount, tt.bps)
			assert.Equal(t, tt.wantFee, fee)
			assert.Equal(t, tt.wantNet, net)
			assert.Equal(t, tt.amount, fee+net, "费与净额之和必须等于总额")
		})
	}
}
