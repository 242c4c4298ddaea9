package cmd

import (
	"fmt"
	"os"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/zostay/go-wireframe/message"
)

var oneCmd = &cobra.Command{
	Use:   "one frame",
	Short: "Shows the diff of a single frame round-trip",
	Args:  cobra.ExactArgs(1),
	Run:   RunOne,
}

func init() {
	rootCmd.AddCommand(oneCmd)
}

func RunOne(cmd *cobra.Command, args []string) {
	path := args[0]
	in, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	m, err := message.Parse(in)
	if err != nil {
		panic(err)
	}

	out := m.Bytes()

	fmt.Printf("path = %s\n", path)
	fmt.Printf("msg  = %s\n", m)

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(in), string(out), false)
	if len(diffs) == 1 && diffs[0].Type == diffmatchpatch.DiffEqual {
		fmt.Println("round trip is clean")
		return
	}
	fmt.Println(dmp.DiffPrettyText(diffs))
}
