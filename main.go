/*
Copyright © 2025 ECS Cost Analysis Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package main

import "github.com/rocky-foreflight/ecs-cost-analysis/cmd"

func main() {
	cmd.Execute()
}
