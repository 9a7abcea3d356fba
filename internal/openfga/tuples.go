// Copyright 2026 Aerobase Group
// SPDX-License-Identifier: AGPL-3.0

package openfga

type Tuple struct {
	User     string
	Relation string
	Object   string
}

func NewTuple(user, relation, object string) *Tuple {
	return &Tuple{
		User:     user,
		Relation: relation,
		Object:   object,
	}
}
