// Copyright 2026 Aerobase Group
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"encoding/json"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/language/pkg/go/transformer"
	"google.golang.org/protobuf/encoding/protojson"
)

// v0Model is the authorization model in OpenFGA DSL form. Platform admins
// are admins of every tenant linked to their privileged group; each
// tenant-scoped administrative role can also be granted directly.
const v0Model = `model
  schema 1.1

type user

type privileged
  relations
    define admin: [user]

type tenant
  relations
    define privileged: [privileged]
    define admin: admin from privileged
    define owner: [user] or admin
    define member: [user] or owner
    define view_tenant: [user] or admin
    define manage_tenant: [user] or admin
    define view_users: [user] or admin
    define manage_users: [user] or admin
    define view_clients: [user] or admin
    define manage_clients: [user] or admin
    define view_events: [user] or admin
    define manage_events: [user] or admin
`

type AuthorizationModelProvider struct {
	version string
}

func (p *AuthorizationModelProvider) GetModel() *fga.AuthorizationModel {
	protoModel := transformer.MustTransformDSLToProto(v0Model)

	jsonModel, err := protojson.Marshal(protoModel)
	if err != nil {
		panic(err)
	}

	model := new(fga.AuthorizationModel)
	if err := json.Unmarshal(jsonModel, model); err != nil {
		panic(err)
	}

	return model
}

func NewAuthorizationModelProvider(version string) *AuthorizationModelProvider {
	return &AuthorizationModelProvider{version: version}
}
