// Copyright (c) 2026, The Svg2pptx Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command svg2pptx converts an SVG file into a PowerPoint presentation
// (spec §6: "svg2pptx INPUT OUTPUT [--profile …] [--animation-mode …]").
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	svg2pptx "github.com/BramAlkema/svg2pptx-sub018"
	"github.com/BramAlkema/svg2pptx-sub018/svcs"
)

const (
	exitSuccess    = 0
	exitInputError = 2
	exitConvertErr = 3
	exitOutputErr  = 4
)

// fileDefaults is the shape of an optional TOML config file naming
// profile defaults, read before flags are applied so a flag the caller
// actually passed always wins.
type fileDefaults struct {
	Profile            string `toml:"profile"`
	SlideWidthEMU      int64  `toml:"slide_width_emu"`
	PreserveAnimations *bool  `toml:"preserve_animations"`
	AnimationMode      string `toml:"animation_mode"`
	BakeFPS            int    `toml:"bake_fps"`
	BakeMaxKeyframes   int    `toml:"bake_max_keyframes"`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("svg2pptx", flag.ContinueOnError)
	configPath := fs.String("config", "", "optional TOML file of profile defaults")
	profile := fs.String("profile", "", "speed | balanced | quality")
	slideWidthEMU := fs.Int64("slide-width-emu", 0, "target slide width in EMU; 0 derives from viewBox")
	preserveAnimations := fs.Bool("preserve-animations", true, "if false, drop animations; the slide shows the un-animated document")
	animationMode := fs.String("animation-mode", "", "powerpoint | baked | static")
	bakeFPS := fs.Int("bake-fps", 0, "sample rate for baked animations (1..60)")
	bakeMaxKeyframes := fs.Int("bake-max-keyframes", 0, "cap on baked keyframes (1..120)")
	if err := fs.Parse(args); err != nil {
		return exitInputError
	}
	rest := fs.Args()
	if len(rest) != 2 {
		fmt.Fprintln(os.Stderr, "usage: svg2pptx INPUT OUTPUT [--profile …] [--animation-mode …]")
		return exitInputError
	}
	inputPath, outputPath := rest[0], rest[1]

	opts := svcs.DefaultOptions()
	if *configPath != "" {
		if err := applyConfigFile(&opts, *configPath); err != nil {
			fmt.Fprintln(os.Stderr, "svg2pptx: config:", err)
			return exitInputError
		}
	}
	applyFlags(&opts, fs, profile, slideWidthEMU, preserveAnimations, animationMode, bakeFPS, bakeMaxKeyframes)

	svgBytes, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "svg2pptx: input:", err)
		return exitInputError
	}

	res, err := svg2pptx.Convert(context.Background(), svgBytes, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "svg2pptx: conversion failed:", err)
		return exitConvertErr
	}
	for _, d := range res.Diagnostics {
		if d.Severity == svcs.SeverityWarning || d.Severity == svcs.SeverityError {
			fmt.Fprintf(os.Stderr, "svg2pptx: %s [%s] %s: %s\n", d.Severity, d.Code, d.ElementPath, d.Message)
		}
	}

	if err := os.WriteFile(outputPath, res.PPTX, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "svg2pptx: output:", err)
		return exitOutputErr
	}
	return exitSuccess
}

// applyConfigFile merges a TOML profile-defaults file into opts. A flag
// the caller explicitly sets on the command line still wins, since
// applyFlags runs after this and only overrides fields whose flag was
// actually visited.
func applyConfigFile(opts *svcs.Options, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var fd fileDefaults
	if err := toml.Unmarshal(data, &fd); err != nil {
		return err
	}
	if fd.Profile != "" {
		opts.Profile = svcs.Profile(fd.Profile)
	}
	if fd.SlideWidthEMU > 0 {
		opts.SlideWidthEMU = fd.SlideWidthEMU
	}
	if fd.PreserveAnimations != nil {
		opts.PreserveAnimations = *fd.PreserveAnimations
	}
	if fd.AnimationMode != "" {
		opts.AnimationMode = svcs.AnimationMode(fd.AnimationMode)
	}
	if fd.BakeFPS > 0 {
		opts.BakeFPS = fd.BakeFPS
	}
	if fd.BakeMaxKeyframes > 0 {
		opts.BakeMaxKeyframes = fd.BakeMaxKeyframes
	}
	return nil
}

func applyFlags(opts *svcs.Options, fs *flag.FlagSet, profile *string, slideWidthEMU *int64, preserveAnimations *bool, animationMode *string, bakeFPS, bakeMaxKeyframes *int) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "profile":
			opts.Profile = svcs.Profile(*profile)
		case "slide-width-emu":
			opts.SlideWidthEMU = *slideWidthEMU
		case "preserve-animations":
			opts.PreserveAnimations = *preserveAnimations
		case "animation-mode":
			opts.AnimationMode = svcs.AnimationMode(*animationMode)
		case "bake-fps":
			opts.BakeFPS = *bakeFPS
		case "bake-max-keyframes":
			opts.BakeMaxKeyframes = *bakeMaxKeyframes
		}
	})
}
