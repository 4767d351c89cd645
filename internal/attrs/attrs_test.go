// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package attrs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttrListSet(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want AttrList
	}{
		{
			name: "single key",
			spec: "changes",
			want: AttrList{{Key: "changes", OutputKey: "changes", Include: true}},
		},
		{
			name: "key with output rename",
			spec: "changeLog:log",
			want: AttrList{{Key: "changeLog", OutputKey: "log", Include: true}},
		},
		{
			name: "key with transform",
			spec: "owner::u",
			want: AttrList{{Key: "owner", OutputKey: "owner", Include: true, TransformSpec: "u"}},
		},
		{
			name: "excluded key",
			spec: "!id",
			want: AttrList{{Key: "id", OutputKey: "id", Include: false}},
		},
		{
			name: "multiple specs",
			spec: "id,changes,!owner",
			want: AttrList{
				{Key: "id", OutputKey: "id", Include: true},
				{Key: "changes", OutputKey: "changes", Include: true},
				{Key: "owner", OutputKey: "owner", Include: false},
			},
		},
		{
			name: "empty spec is a no-op",
			spec: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var al AttrList
			require.NoError(t, al.Set(tt.spec))
			assert.Equal(t, tt.want, al)
		})
	}
}

// A later spec for an existing key updates the entry in place instead of
// appending a duplicate column.
func TestAttrListSet_ExistingKeyUpdated(t *testing.T) {
	var al AttrList
	require.NoError(t, al.Set("id,changes"))
	require.NoError(t, al.Set("changes:summary:u"))

	require.Len(t, al, 2)
	assert.Equal(t, "summary", al[1].OutputKey)
	assert.Equal(t, "u", al[1].TransformSpec)
}

func TestSetGlobalTransformSpec(t *testing.T) {
	var al AttrList
	require.NoError(t, al.Set("id,owner,*::u"))
	require.NoError(t, al.SetGlobalTransformSpec())

	assert.Equal(t, "u,", al[0].TransformSpec)
	assert.Equal(t, "u,", al[1].TransformSpec)
}

func TestTransform(t *testing.T) {
	tests := []struct {
		name  string
		spec  string
		value interface{}
		want  interface{}
	}{
		{
			name:  "upper case",
			spec:  "u",
			value: "alice",
			want:  "ALICE",
		},
		{
			name:  "lower case",
			spec:  "l",
			value: "ALICE",
			want:  "alice",
		},
		{
			name:  "last case transform wins",
			spec:  "U,l",
			value: "Alice",
			want:  "alice",
		},
		{
			name:  "right truncation",
			spec:  "4",
			value: "abcdefgh",
			want:  "abcd",
		},
		{
			name:  "middle ellipsis",
			spec:  "-8",
			value: "abcdefghijkl",
			want:  "abc..jkl",
		},
		{
			name:  "short value untouched by truncation",
			spec:  "10",
			value: "abc",
			want:  "abc",
		},
		{
			name:  "non-string passes through",
			spec:  "u",
			value: 42,
			want:  42,
		},
		{
			name:  "no spec",
			spec:  "",
			value: "x",
			want:  "x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Attr{Key: "k", OutputKey: "k", TransformSpec: tt.spec}
			assert.Equal(t, tt.want, a.Transform(tt.value))
		})
	}
}

func TestTransform_TimeAgo(t *testing.T) {
	a := Attr{Key: "k", OutputKey: "k", TransformSpec: "T"}
	got := a.Transform("2001-01-02T15:04:05Z")
	// humanize renders a relative phrase; the exact wording depends on now.
	assert.NotEqual(t, "2001-01-02T15:04:05Z", got)
	assert.Contains(t, got, "ago")
}

func TestAttrListString(t *testing.T) {
	var al AttrList
	require.NoError(t, al.Set("id,owner::u"))
	assert.Equal(t, "id:id:,owner:owner:u", al.String())
}
