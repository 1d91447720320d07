// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"reflect"
	"testing"
	"time"

	"cogentcore.org/gloom/events/key"
	"github.com/stretchr/testify/assert"
)

type inner struct {
	Rate float32 `default:"0.5"`
}

type duration time.Duration

func (d *duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	*d = duration(v)
	return err
}

type settings struct {
	Name    string      `default:"gloom"`
	Size    int         `default:"800"`
	On      bool        `default:"true"`
	Count   uint8       `default:"7"`
	Paths   []string    `default:"a.vert, b.frag"`
	Keys    []key.Codes `default:"Escape,Q"`
	Wait    duration    `default:"100ms"`
	None    []string    `default:""`
	Inner   inner
	NoTag   int
	private int `default:"3"`
}

func TestSetFromDefaultTags(t *testing.T) {
	s := &settings{NoTag: 5, None: []string{"x"}}
	assert.NoError(t, SetFromDefaultTags(s))
	assert.Equal(t, "gloom", s.Name)
	assert.Equal(t, 800, s.Size)
	assert.True(t, s.On)
	assert.Equal(t, uint8(7), s.Count)
	assert.Equal(t, []string{"a.vert", "b.frag"}, s.Paths)
	assert.Equal(t, []key.Codes{key.CodeEscape, key.CodeQ}, s.Keys)
	assert.Equal(t, duration(100*time.Millisecond), s.Wait)
	assert.Empty(t, s.None)
	assert.Equal(t, float32(0.5), s.Inner.Rate)
	assert.Equal(t, 5, s.NoTag)
	assert.Zero(t, s.private)
}

func TestSetFromDefaultTagsErrors(t *testing.T) {
	assert.Error(t, SetFromDefaultTags(settings{}))
	assert.Error(t, SetFromDefaultTags((*settings)(nil)))
	n := 3
	assert.Error(t, SetFromDefaultTags(&n))

	type bad struct {
		Size int  `default:"big"`
		On   bool `default:"true"`
	}
	b := &bad{}
	err := SetFromDefaultTags(b)
	assert.ErrorContains(t, err, "field Size")
	assert.True(t, b.On, "later fields are still set")
}

func TestSetFromString(t *testing.T) {
	var f float64
	assert.NoError(t, SetFromString(reflect.ValueOf(&f).Elem(), "2.5"))
	assert.Equal(t, 2.5, f)

	var m map[string]int
	assert.Error(t, SetFromString(reflect.ValueOf(&m).Elem(), "x"))
}
