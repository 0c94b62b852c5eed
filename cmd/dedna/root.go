/*
 * root.go, part of DeDNA.
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
	"log"

	dna "github.com/Eldergenix/DeDNA"
	"github.com/Eldergenix/DeDNA/config"
	"github.com/Eldergenix/DeDNA/scenejson"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	settings = viper.New()
	cfg      config.Config

	settingsFile string
	verbose      bool

	// the scene to build
	position int64
	ref      string
	alt      string
	gene     string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "dedna",
	Short: "Build, draw and inspect synthetic DNA helices around a genomic position",
	Long: `Build, draw and inspect synthetic DNA helices around a genomic position.

The helix is an approximate double helix (backbone, sugars, bases and hydrogen bonds)
built from the position alone: background bases are derived from the coordinate, and an
optional variant (--ref/--alt) is shown at the center of the window.

Settings are read from dedna.yaml (working directory or $HOME/.dedna), DEDNA_* environment
variables and flags, in increasing order of priority.`,
	Version:      "0.1.0",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Setup(settings, settingsFile)
		c, err := config.Load(settings)
		if err != nil {
			return err
		}
		cfg = c
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&settingsFile, "settings", "", "settings file (default dedna.yaml)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log the generation phases")
	flags.Int64VarP(&position, "position", "p", 0, "genomic coordinate at the center of the helix")
	flags.StringVar(&ref, "ref", "", "reference allele of the variant")
	flags.StringVar(&alt, "alt", "", "alternate allele of the variant")
	flags.StringVar(&gene, "gene", "", "gene label of the variant")
	flags.IntP("window", "w", 12, "number of helix steps")
	flags.Int("width", 640, "output width in pixels")
	flags.Int("height", 480, "output height in pixels")

	// Bind the parameters to viper
	settings.BindPFlag("window", flags.Lookup("window"))
	settings.BindPFlag("width", flags.Lookup("width"))
	settings.BindPFlag("height", flags.Lookup("height"))
}

// variant returns the variant given on the command line, or nil if there is none.
func variant() *dna.Variant {
	if ref == "" && alt == "" {
		return nil
	}
	return &dna.Variant{Ref: ref, Alt: alt, Gene: gene}
}

// scene builds the helix given on the command line.
func scene() *dna.Scene {
	return dna.Generate(position, variant(), cfg.Window)
}

// sceneOrSnapshot reads the snapshot in file, or builds the helix given
// on the command line if file is empty.
func sceneOrSnapshot(file string) (*dna.Scene, error) {
	if file == "" {
		return scene(), nil
	}
	return scenejson.ReadFile(file)
}
