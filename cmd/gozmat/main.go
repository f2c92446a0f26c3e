/*
 * main.go, part of gozmat.
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

//gozmat prints the internal geometry (bond lengths, bond angles and, optionally,
//out-of-plane angles) of the molecules in the given files. Each file is
//processed independently.
//
//	gozmat [OPTIONS] FILE...
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	flags "github.com/jessevdk/go-flags"
)

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
	c, err := loadConfig(&opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gozmat:", err)
		os.Exit(1)
	}
	logger, err := newLogger(c, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gozmat:", err)
		os.Exit(1)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, c, opts.Args.Files, logger, os.Stdout); err != nil {
		logger.WithError(err).Error("gozmat finished with errors")
		stop()
		os.Exit(1)
	}
}
