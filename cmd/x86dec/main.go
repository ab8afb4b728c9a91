// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Program x86dec decodes x86 machine code.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tsavola/x86dec"
	"github.com/tsavola/x86dec/dump"
	"golang.org/x/sys/unix"
)

var (
	config   = x86dec.Config{Bitness: 64}
	verbose  = false
	tree     = false
	capstone = false
)

func main() {
	log.SetFlags(0)

	rootCmd := &cobra.Command{
		Use:          "x86dec",
		Short:        "x86 instruction decoder",
		SilenceUsage: true,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.IntVarP(&config.Bitness, "bitness", "b", config.Bitness, "decoding mode: 16, 32 or 64")
	flags.Uint64Var(&config.IP, "ip", config.IP, "address of the first byte")
	flags.BoolVarP(&verbose, "verbose", "v", verbose, "verbose logging")
	flags.BoolVar(&capstone, "capstone", capstone, "compare with capstone (requires cgo)")

	decodeCmd := &cobra.Command{
		Use:   "decode HEX...",
		Short: "Decode instructions from hexadecimal arguments",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := hex.DecodeString(strings.Join(strings.Fields(strings.Join(args, " ")), ""))
			if err != nil {
				return err
			}
			return run(os.Stdout, data)
		},
	}
	decodeCmd.Flags().BoolVar(&tree, "tree", tree, "print instruction fields as a tree")

	dumpCmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "Decode a whole file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := mapFile(args[0])
			if err != nil {
				return err
			}
			defer unix.Munmap(data)

			return run(os.Stdout, data)
		},
	}
	dumpCmd.Flags().BoolVar(&tree, "tree", tree, "print instruction fields as a tree")

	rootCmd.AddCommand(decodeCmd, dumpCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func run(w io.Writer, data []byte) error {
	if verbose {
		log.Printf("decoding %d bytes in %d-bit mode at %#x", len(data), config.Bitness, config.IP)
	}

	switch {
	case tree:
		return printTrees(w, data)

	case capstone:
		return dump.Capstone(w, config, data)

	default:
		return dump.Text(w, config, data)
	}
}

func printTrees(w io.Writer, data []byte) error {
	d, err := x86dec.NewDecoder(config, data)
	if err != nil {
		return err
	}

	for d.More() {
		insn, err := d.Decode()
		if err != nil {
			log.Print(err)
			continue
		}

		if verbose {
			log.Printf("%#x: %d bytes", insn.IP(), insn.Len())
		}

		if _, err := fmt.Fprintln(w, instructionTree(insn).String()); err != nil {
			return err
		}
	}

	return nil
}

func mapFile(filename string) (data []byte, err error) {
	f, err := os.Open(filename)
	if err != nil {
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return
	}

	if info.Size() == 0 {
		err = fmt.Errorf("%s: empty file", filename)
		return
	}

	return unix.Mmap(int(f.Fd()), 0, int(info.Size()), unix.PROT_READ, unix.MAP_PRIVATE)
}
