package main

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	yawamcp "github.com/claude/yawa/internal/mcp"
)

func newMCPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve read-only program tools to an MCP client over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := yawamcp.New(a.svc, Version, a.log)
			a.log.Info("mcp server listening on stdio")
			return server.NewStdioServer(s).Listen(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
