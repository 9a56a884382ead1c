package command

import (
	"context"
	"fmt"
	"os"

	"github.com/sourcegraph/jsonrpc2"
	"github.com/spf13/cobra"
)

// NewLspCommand creates the lsp command
func NewLspCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Run the HSML language server over stdio",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			conn := jsonrpc2.NewConn(
				ctx,
				jsonrpc2.NewBufferedStream(stdrwc{}, jsonrpc2.VSCodeObjectCodec{}),
				jsonrpc2.HandlerWithError(handleLSPRequest),
			)
			<-conn.DisconnectNotify()
		},
	}
	return cmd
}

// handleLSPRequest answers the LSP lifecycle methods. The server does not
// offer language features beyond initialization yet.
func handleLSPRequest(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (interface{}, error) {
	switch req.Method {
	case "initialize":
		return map[string]interface{}{
			"capabilities": map[string]interface{}{},
			"serverInfo": map[string]interface{}{
				"name":    "HSML Language Server",
				"version": Version,
			},
		}, nil
	case "initialized":
		return nil, nil
	case "shutdown":
		return nil, nil
	case "exit":
		conn.Close()
		return nil, nil
	}

	if req.Notif {
		return nil, nil
	}
	return nil, &jsonrpc2.Error{
		Code:    jsonrpc2.CodeMethodNotFound,
		Message: fmt.Sprintf("method not supported: %s", req.Method),
	}
}

// stdrwc adapts stdin/stdout into the ReadWriteCloser the jsonrpc2 stream
// wants.
type stdrwc struct{}

func (stdrwc) Read(p []byte) (int, error) {
	return os.Stdin.Read(p)
}

func (stdrwc) Write(p []byte) (int, error) {
	return os.Stdout.Write(p)
}

func (stdrwc) Close() error {
	if err := os.Stdin.Close(); err != nil {
		return err
	}
	return os.Stdout.Close()
}
