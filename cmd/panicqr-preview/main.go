/*
 * Copyright © 2026, panicqr authors.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Command panicqr-preview renders one QR symbol from stdin-free sample
// text and opens it in the developer's browser, standing in for the
// camera a capture session would normally be scanned by.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/browser"
	"github.com/urfave/cli"

	"github.com/grkuntzmd/panicqr/internal/qr"
)

func main() {
	app := cli.NewApp()
	app.Name = "panicqr-preview"
	app.Usage = "render one QR symbol to SVG and open it in a browser"
	app.Flags = []cli.Flag{
		cli.IntFlag{Name: "version", Value: 5, Usage: "QR version 1-40"},
		cli.StringFlag{Name: "text", Value: "the quick brown fox jumps over the lazy dog", Usage: "payload text"},
		cli.StringFlag{Name: "out", Value: "", Usage: "write SVG to this path instead of opening a browser"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "panicqr-preview:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	version := c.Int("version")
	text := c.String("text")

	var data [qr.MinDataBufCap]byte
	var tmp [qr.MinTmpBufCap]byte
	n := copy(data[:], text)

	width, err := qr.Generate("", data[:], n, version, len(data), tmp[:], len(tmp))
	if err != nil {
		return fmt.Errorf("generating symbol: %w", err)
	}

	stride := (width + 7) / 8
	svg, err := qr.ToSVG(data[:stride*width], width, stride, 4)
	if err != nil {
		return fmt.Errorf("rendering svg: %w", err)
	}

	if out := c.String("out"); out != "" {
		return os.WriteFile(out, []byte(svg), 0o644)
	}

	tmpFile, err := os.CreateTemp("", "panicqr-preview-*.svg")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer tmpFile.Close()
	if _, err := tmpFile.WriteString(svg); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}

	return browser.OpenFile(tmpFile.Name())
}
