// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package query

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey_Equality(t *testing.T) {
	m := map[Key]int{}
	m[Key{Origin: "Oslo", Destination: "Bergen"}] = 1
	m[Key{Origin: "Oslo", Destination: "Bergen"}] = 2
	m[Key{Origin: "oslo", Destination: "Bergen"}] = 3
	m[Key{}] = 4

	assert.Len(t, m, 3)
	assert.Equal(t, 2, m[Key{Origin: "Oslo", Destination: "Bergen"}])
	assert.Equal(t, 4, m[Key{}])
}

func TestRender(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		want   string
	}{
		{
			name: "both present",
			result: Result{
				DistanceMeters:  Ptr(uint32(5000)),
				DistanceText:    Ptr("5 km"),
				DurationSeconds: Ptr(int64(600)),
				DurationText:    Ptr("10 mins"),
			},
			want: "Distance:    5 km\nTravel time: 10 mins\n",
		},
		{
			name:   "distance missing",
			result: Result{DurationText: Ptr("10 mins")},
			want:   "Distance:    N/A\nTravel time: 10 mins\n",
		},
		{
			name:   "duration missing",
			result: Result{DistanceText: Ptr("5 km")},
			want:   "Distance:    5 km\nTravel time: N/A\n",
		},
		{
			name:   "numbers without text",
			result: Result{DistanceMeters: Ptr(uint32(1)), DurationSeconds: Ptr(int64(1))},
			want:   "Distance:    N/A\nTravel time: N/A\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			assert.NoError(t, Render(&buf, tt.result))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestResult_Equal(t *testing.T) {
	zero := Result{DistanceMeters: Ptr(uint32(0))}
	absent := Result{}

	assert.True(t, zero.Equal(Result{DistanceMeters: Ptr(uint32(0))}))
	assert.False(t, zero.Equal(absent), "zero and absent must differ")
	assert.True(t, absent.Equal(Result{}))
	assert.False(t, Result{DistanceText: Ptr("a")}.Equal(Result{DistanceText: Ptr("b")}))
}
