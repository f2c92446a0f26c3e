/*
 * config.go, part of gozmat.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package main

import (
	"os"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	zmat "github.com/rmera/gozmat"
	"gopkg.in/yaml.v2"
)

//Options are the command line flags of gozmat. Flags given explicitly
//override the values in the configuration file.
type Options struct {
	Config       string   `short:"c" long:"config" description:"YAML configuration file"`
	Format       string   `short:"f" long:"format" choice:"text" choice:"json" description:"Output format"`
	Degrees      bool     `short:"d" long:"degrees" description:"Report angles in degrees instead of radians"`
	Workers      int      `short:"w" long:"workers" description:"Number of files processed at the same time (default: number of CPUs)"`
	AngleWorkers int      `long:"angle-workers" description:"Goroutines used to obtain the bond angles of each molecule (0: sequential)"`
	LogLevel     string   `long:"log-level" description:"Log level (trace, debug, info, warn, error)"`
	LogFormat    string   `long:"log-format" choice:"text" choice:"json" description:"Log format"`
	Bins         int      `short:"b" long:"bins" description:"Bins for the bond-length and bond-angle histograms (0: no histograms)"`
	Plot         string   `short:"p" long:"plot" description:"Write PNG plots of the histograms, with this prefix"`
	OutOfPlane   []string `short:"o" long:"oop" description:"Out-of-plane angle of atom i w.r.t. the plane j,k,l, given as \"i,j,k,l\". Can be repeated"`
	Write        string   `long:"write" description:"Write each molecule as XYZ into this directory"`
	Args         struct {
		Files []string `positional-arg-name:"FILE" required:"1"`
	} `positional-args:"yes"`
}

//Config is the configuration for a gozmat run.
type Config struct {
	Format       string `yaml:"format"`
	Degrees      bool   `yaml:"degrees"`
	Workers      int    `yaml:"workers"`
	AngleWorkers int    `yaml:"angle_workers"`
	Log          struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	Bins       int      `yaml:"bins"`
	Plot       string   `yaml:"plot"`
	OutOfPlane []string `yaml:"out_of_plane"`
	Write      string   `yaml:"write"`

	quadruples [][4]int
}

const defaultPlotBins = 18

func defaultConfig() Config {
	var c Config
	c.Format = "text"
	c.Workers = runtime.GOMAXPROCS(0)
	c.Log.Level = "info"
	c.Log.Format = "text"
	return c
}

//loadConfig builds the configuration from the defaults, the
//configuration file given in opts, if any, and the flags in opts, in that order.
func loadConfig(opts *Options) (Config, error) {
	c := defaultConfig()
	if opts.Config != "" {
		data, err := os.ReadFile(opts.Config)
		if err != nil {
			return c, errors.Wrapf(err, "reading config file %s", opts.Config)
		}
		if err := yaml.UnmarshalStrict(data, &c); err != nil {
			return c, errors.Wrapf(err, "parsing config file %s", opts.Config)
		}
	}
	c.fromFlags(opts)
	if err := c.validate(); err != nil {
		return c, err
	}
	return c, nil
}

//fromFlags overrides the values of the configuration with the flags that were set.
func (c *Config) fromFlags(opts *Options) {
	if opts.Format != "" {
		c.Format = opts.Format
	}
	if opts.Degrees {
		c.Degrees = true
	}
	if opts.Workers > 0 {
		c.Workers = opts.Workers
	}
	if opts.AngleWorkers > 0 {
		c.AngleWorkers = opts.AngleWorkers
	}
	if opts.LogLevel != "" {
		c.Log.Level = opts.LogLevel
	}
	if opts.LogFormat != "" {
		c.Log.Format = opts.LogFormat
	}
	if opts.Bins > 0 {
		c.Bins = opts.Bins
	}
	if opts.Plot != "" {
		c.Plot = opts.Plot
	}
	if len(opts.OutOfPlane) > 0 {
		c.OutOfPlane = opts.OutOfPlane
	}
	if opts.Write != "" {
		c.Write = opts.Write
	}
}

func (c *Config) validate() error {
	c.Format = strings.ToLower(c.Format)
	if c.Format != "text" && c.Format != "json" {
		return errors.Errorf("output format must be text or json, got %q", c.Format)
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
	if c.AngleWorkers < 0 {
		return errors.Errorf("angle_workers can't be negative, got %d", c.AngleWorkers)
	}
	if c.Bins < 0 {
		return errors.Errorf("bins can't be negative, got %d", c.Bins)
	}
	if c.Plot != "" && c.Bins == 0 {
		c.Bins = defaultPlotBins
	}
	if _, err := logLevelFromString(c.Log.Level); err != nil {
		return errors.Wrapf(err, "log level %q", c.Log.Level)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return errors.Errorf("log format must be text or json, got %q", c.Log.Format)
	}
	c.quadruples = make([][4]int, 0, len(c.OutOfPlane))
	for _, v := range c.OutOfPlane {
		q, err := zmat.ParseQuadruple(v)
		if err != nil {
			return errors.Wrap(err, "out-of-plane indexes")
		}
		c.quadruples = append(c.quadruples, q)
	}
	return nil
}
