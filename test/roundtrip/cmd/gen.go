package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zostay/go-wireframe/message"
)

var genCmd = &cobra.Command{
	Use:   "gen frame",
	Short: "Writes a sample frame for use in round-trip testing",
	Args:  cobra.ExactArgs(1),
	Run:   RunGen,
}

func init() {
	rootCmd.AddCommand(genCmd)
}

func RunGen(cmd *cobra.Command, args []string) {
	buf := &message.Buffer{}
	m, err := buf.
		AddHeader("Content-Type", "text/html").
		SetBody("<html><body><h1>Hello, world!</h1></body></html>").
		Message()
	if err != nil {
		panic(err)
	}

	err = os.WriteFile(args[0], m.Bytes(), 0644)
	if err != nil {
		panic(err)
	}

	fmt.Printf("wrote %s\n", args[0])
}
