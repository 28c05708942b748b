// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package holiday

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Projection is a record reduced to a chosen subset of fields. Keys are
// serialized in the order they were requested.
type Projection struct {
	fields []Field
	values []any
}

// Project extracts fields from h in the given order. Unknown fields are
// skipped; callers validate with ParseFields first.
func Project(h Holiday, fields []Field) Projection {
	p := Projection{
		fields: make([]Field, 0, len(fields)),
		values: make([]any, 0, len(fields)),
	}
	for _, f := range fields {
		v, ok := h.Value(f)
		if !ok {
			continue
		}
		p.fields = append(p.fields, f)
		p.values = append(p.values, v)
	}
	return p
}

// Fields returns the projected keys in order.
func (p Projection) Fields() []Field {
	out := make([]Field, len(p.fields))
	copy(out, p.fields)
	return out
}

// Get returns the value of f if it was projected.
func (p Projection) Get(f Field) (any, bool) {
	for i, name := range p.fields {
		if name == f {
			return p.values[i], true
		}
	}
	return nil, false
}

// Len returns the number of projected fields.
func (p Projection) Len() int {
	return len(p.fields)
}

// MarshalJSON writes an object with keys in projection order.
func (p Projection) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range p.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(f))
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(p.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML writes a mapping with keys in projection order.
func (p Projection) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for i, f := range p.fields {
		val := &yaml.Node{}
		if err := val.Encode(p.values[i]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(f)},
			val)
	}
	return node, nil
}
