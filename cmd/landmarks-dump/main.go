// Copyright 2026 Benoit Pereira da Silva
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

// Command landmarks-dump tokenizes a file with the built-in HTML or XML
// policy and prints the resulting event trace, either as plain text or as
// JSON (via pkg/landmarksjson). It exists as a demonstration of the core
// package, not as a supported tool in its own right.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/callionica/landmarks/pkg/htmlpolicy"
	"github.com/callionica/landmarks/pkg/landmarks"
	"github.com/callionica/landmarks/pkg/landmarksjson"
	"github.com/callionica/landmarks/pkg/xmlpolicy"
)

var (
	policyName string
	asJSON     bool
)

var rootCmd = &cobra.Command{
	Use:   "landmarks-dump [file]",
	Short: "Tokenize a markup file and print its event trace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args[0])
	},
}

func init() {
	rootCmd.Flags().StringVar(&policyName, "policy", "html", `dialect policy to use: "html" or "xml"`)
	rootCmd.Flags().BoolVar(&asJSON, "json", false, "print the event trace as JSON instead of plain text")
}

func run(path string) error {
	logger := slog.Default()

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	policy, err := resolvePolicy(policyName)
	if err != nil {
		return err
	}

	logger.Info("tokenizing", "file", path, "policy", policyName, "bytes", len(source))

	collector := &landmarksjson.Collector{}
	tok := landmarks.New(string(source), policy, collector)
	if err := landmarks.SafeParse(tok); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(collector.Events)
	}

	for _, ev := range collector.Events {
		printEvent(ev)
	}
	return nil
}

func printEvent(ev landmarksjson.Event) {
	switch ev.Type {
	case "text":
		fmt.Printf("TEXT        %q\n", ev.Text)
	case "comment":
		fmt.Printf("COMMENT     %q\n", ev.Text)
	case "cdata":
		fmt.Printf("CDATA       %q\n", ev.Text)
	case "processing":
		fmt.Printf("PI          %q\n", ev.Text)
	case "declaration":
		fmt.Printf("DECLARATION %q\n", ev.Text)
	case "startTagPrefix":
		fmt.Printf("<%s", ev.TagID)
		for _, a := range ev.Attrs {
			fmt.Printf(" %s=%q", a.Name, a.Value)
		}
		fmt.Println(">")
	case "startTag":
		if ev.SelfClosed {
			fmt.Printf("  (self-closing %s)\n", ev.TagID)
		}
	case "endTag":
		fmt.Printf("</%s> [%s]\n", ev.TagID, ev.State)
	case "endOfInput":
		fmt.Printf("EOF, still open: %v\n", ev.OpenAtEnd)
	}
}

func resolvePolicy(name string) (landmarks.Policy, error) {
	switch name {
	case "html":
		return htmlpolicy.Policy{}, nil
	case "xml":
		return xmlpolicy.Policy{}, nil
	default:
		return nil, fmt.Errorf("unknown policy %q, want \"html\" or \"xml\"", name)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("landmarks-dump failed", "error", err)
		os.Exit(1)
	}
}
