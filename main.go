// Copyright 2026 Aerobase Group
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/aerobase/tenant-provisioner/cmd"

func main() {
	cmd.Execute()
}
