/*
 * config.go, part of DeDNA.
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

//Package config holds the settings of the dedna command, read with viper from
//defaults, an optional dedna.yaml file, DEDNA_* environment variables and flags.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Eldergenix/DeDNA/render"
	"github.com/Eldergenix/DeDNA/viewer"
	"github.com/spf13/viper"
)

//RenderConfig are the projection settings.
type RenderConfig struct {
	Focal     float64 `mapstructure:"focal"`
	BaseScale float64 `mapstructure:"base-scale"`
	BondWidth float64 `mapstructure:"bond-width"`
}

//ViewConfig are the interaction and animation settings.
type ViewConfig struct {
	// radians per pixel of drag
	Sensitivity float64 `mapstructure:"sensitivity"`
	// radians per tick
	AutoRotate float64       `mapstructure:"auto-rotate"`
	Tick       time.Duration `mapstructure:"tick"`
	PulseSpeed float64       `mapstructure:"pulse-speed"`
	ZoomStep   float64       `mapstructure:"zoom-step"`
	MinZoom    float64       `mapstructure:"min-zoom"`
	MaxZoom    float64       `mapstructure:"max-zoom"`
	Zoom       float64       `mapstructure:"zoom"`
	AutoFit    bool          `mapstructure:"auto-fit"`
}

//GenerationConfig are the settings of the staged scene generation.
type GenerationConfig struct {
	PhaseDelay        time.Duration `mapstructure:"phase-delay"`
	BlankWhilePending bool          `mapstructure:"blank-while-pending"`
}

//Config is the root-level settings struct.
type Config struct {
	// helix steps per scene
	Window int `mapstructure:"window"`
	// output size in pixels
	Width      int              `mapstructure:"width"`
	Height     int              `mapstructure:"height"`
	Render     RenderConfig     `mapstructure:"render"`
	View       ViewConfig       `mapstructure:"view"`
	Generation GenerationConfig `mapstructure:"generation"`
}

//SetDefaults sets the default of every setting in v.
func SetDefaults(v *viper.Viper) {
	ro := render.DefaultOptions()
	vo := viewer.DefaultOptions()
	v.SetDefault("window", 12)
	v.SetDefault("width", 640)
	v.SetDefault("height", 480)
	v.SetDefault("render.focal", ro.Focal)
	v.SetDefault("render.base-scale", ro.BaseScale)
	v.SetDefault("render.bond-width", ro.BondWidth)
	v.SetDefault("view.sensitivity", vo.Sensitivity)
	v.SetDefault("view.auto-rotate", vo.AutoRotate)
	v.SetDefault("view.tick", vo.TickInterval)
	v.SetDefault("view.pulse-speed", vo.PulseSpeed)
	v.SetDefault("view.zoom-step", vo.ZoomStep)
	v.SetDefault("view.min-zoom", vo.MinZoom)
	v.SetDefault("view.max-zoom", vo.MaxZoom)
	v.SetDefault("view.zoom", vo.InitialZoom)
	v.SetDefault("view.auto-fit", true)
	v.SetDefault("generation.phase-delay", vo.PhaseDelay)
	v.SetDefault("generation.blank-while-pending", false)
}

//Setup prepares v to read the settings: defaults, environment variables with the DEDNA
//prefix (DEDNA_VIEW_MIN_ZOOM for view.min-zoom) and the settings file. If file is empty,
//dedna.yaml is looked for in the working directory and in $HOME/.dedna.
func Setup(v *viper.Viper, file string) {
	SetDefaults(v)
	v.SetEnvPrefix("DEDNA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if file != "" {
		v.SetConfigFile(file)
		return
	}
	v.SetConfigName("dedna")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".dedna"))
	}
}

//Load reads the settings file, if there is one, and returns the settings in v. Setup
//must have been called on v. A missing settings file is not an error, unless it was
//given explicitly.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.ReadInConfig(); err != nil {
		var notfound viper.ConfigFileNotFoundError
		if !errors.As(err, &notfound) {
			return c, err
		}
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, nil
}

//New returns the settings from a fresh viper instance, see Setup and Load.
func New(file string) (Config, error) {
	v := viper.New()
	Setup(v, file)
	return Load(v)
}

//RenderOptions returns the projection options.
func (C Config) RenderOptions() render.Options {
	return render.Options{Focal: C.Render.Focal, BaseScale: C.Render.BaseScale, BondWidth: C.Render.BondWidth}
}

//ViewerOptions returns the options for a viewer. Progress and Logger are left for the caller.
func (C Config) ViewerOptions() viewer.Options {
	return viewer.Options{
		Sensitivity:       C.View.Sensitivity,
		AutoRotate:        C.View.AutoRotate,
		ZoomStep:          C.View.ZoomStep,
		MinZoom:           C.View.MinZoom,
		MaxZoom:           C.View.MaxZoom,
		InitialZoom:       C.View.Zoom,
		TickInterval:      C.View.Tick,
		PulseSpeed:        C.View.PulseSpeed,
		PhaseDelay:        C.Generation.PhaseDelay,
		AutoFit:           C.View.AutoFit,
		BlankWhilePending: C.Generation.BlankWhilePending,
		Render:            C.RenderOptions(),
	}
}

//Viewport returns the output size as a render viewport.
func (C Config) Viewport() render.Viewport {
	return render.Viewport{Width: float64(C.Width), Height: float64(C.Height)}
}
