/*
Copyright Gemeente Nijmegen. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package main Haal Centraal BRP gateway REST API.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/gemeentenijmegen/haalcentraal-gateway/cmd/gateway-rest/startcmd"
)

var logger = log.New("gateway-rest")

var Version string // will be embedded during build

func main() {
	rootCmd := &cobra.Command{
		Use: "gateway-rest",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}

	rootCmd.AddCommand(startcmd.GetStartCmd(
		&startcmd.HTTPServer{},
		startcmd.WithVersion(Version),
		startcmd.WithServerVersion(os.Getenv("BRP_GATEWAY_SERVER_VERSION")),
	))

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("Failed to run gateway-rest", log.WithError(err))
	}
}
