/*
 * export.go, part of DeDNA.
 *
 * Copyright 2026 The DeDNA Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	dna "github.com/Eldergenix/DeDNA"
	"github.com/Eldergenix/DeDNA/scenejson"
	"github.com/spf13/cobra"
)

var exportOut string

// exportCmd writes the scene to a file
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the helix as a JSON snapshot or an XYZ file",
	Long: `Write the helix as a JSON snapshot or an XYZ file.

The format is chosen from the extension of the output: .xyz for XYZ coordinates,
anything else for a JSON snapshot, compressed with zstd if the name ends in .zst
and with gzip if it ends in .gz.`,
	Example: `  dedna export -p 100 --ref G --alt A -o helix.json.zst`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := scene()
		var err error
		if strings.ToLower(filepath.Ext(exportOut)) == ".xyz" {
			err = dna.XYZWrite(exportOut, s)
		} else {
			err = scenejson.WriteFile(exportOut, s)
		}
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d atoms, %d bonds\n", exportOut, s.Len(), len(s.Bonds))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "helix.json", "output file")
}
