/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gomate/InputParameters"
	"github.com/notargets/gomate/driver"
	"github.com/notargets/gomate/materials"
	"github.com/notargets/gomate/results"
)

type PointRun struct {
	ICFile     string
	DBFile     string
	Profile    string
	ProfileDir string
	Columns    []string
	Threads    int
	Verbose    bool
}

// PointCmd represents the point command
var PointCmd = &cobra.Command{
	Use:   "point",
	Short: "Run a constitutive model over the loading paths of an input deck",
	Long: `
Runs a material model at one or more points, each following its own loading
path, and prints the scalar properties after every step.

gomate point -I deck.yaml --db results.sqlite`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		pr := &PointRun{}
		if pr.ICFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			panic(err)
		}
		pr.DBFile, _ = cmd.Flags().GetString("db")
		pr.Profile, _ = cmd.Flags().GetString("profile")
		pr.ProfileDir, _ = cmd.Flags().GetString("profileDir")
		pr.Columns, _ = cmd.Flags().GetStringSlice("columns")
		pr.Threads = viper.GetInt("threads")
		pr.Verbose = viper.GetBool("verbose")
		ip := processPointInput(pr)
		if err = RunPoint(pr, ip, os.Stdout); err != nil {
			if errors.Is(err, materials.ErrConfig) {
				fmt.Printf("configuration error: %s\n", err.Error())
			} else {
				fmt.Printf("error: %s\n", err.Error())
			}
			os.Exit(1)
		}
	},
}

func processPointInput(pr *PointRun) (ip *InputParameters.PointDeck) {
	var (
		err error
	)
	if len(pr.ICFile) == 0 {
		err = fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Uniaxial tension"
Model: miehe-fracture
Dim: 2
Dt: 0.1
Params: {E: 210, nu: 0.3, Gc: 2.7e-3, eps: 0.015}
Points:
  - Ramp:
      U: [0, 0, 0]                  # d, ux, uy
      GradU: [[], [0.01, 0], [0, 0]]
      NSteps: 10
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	var data []byte
	if data, err = os.ReadFile(pr.ICFile); err != nil {
		panic(err)
	}
	ip = &InputParameters.PointDeck{}
	if err = ip.Parse(data); err != nil {
		fmt.Printf("error: unable to parse %s: %s\n", pr.ICFile, err.Error())
		os.Exit(1)
	}
	return
}

func init() {
	rootCmd.AddCommand(PointCmd)
	PointCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- Model\n\t- Params\n\t- Points")
	PointCmd.Flags().String("db", "", "SQLite file to store the results in")
	PointCmd.Flags().StringP("profile", "p", "", "profile the run: cpu or mem")
	PointCmd.Flags().String("profileDir", ".", "directory for profile output")
	PointCmd.Flags().StringSliceP("columns", "c", nil, "scalar properties to print, default all")
}

// RunPoint runs the deck and writes the table to w
func RunPoint(pr *PointRun, ip *InputParameters.PointDeck, w io.Writer) (err error) {
	if err = ip.Validate(); err != nil {
		return
	}
	if pr.Verbose {
		ip.Print()
	}
	switch pr.Profile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(pr.ProfileDir), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(pr.ProfileDir), profile.NoShutdownHook).Stop()
	default:
		return fmt.Errorf("unknown profile %q, use cpu or mem", pr.Profile)
	}
	var (
		mt    materials.ModelType
		paths []driver.Path
	)
	if mt, err = ip.ModelType(); err != nil {
		return
	}
	if paths, err = ip.Paths(); err != nil {
		return
	}
	threads := ip.Threads
	if pr.Threads > 0 {
		threads = pr.Threads
	}
	var d *driver.Driver
	if d, err = driver.New(mt, ip.Params, ip.Dim, ip.Dt, threads); err != nil {
		return
	}
	d.Verbose = pr.Verbose

	columns := pr.Columns
	if len(columns) == 0 {
		columns = append(columns, d.Model.Provides()[materials.ScalarKind]...)
		sort.Strings(columns)
	}
	rec := results.Tee{results.NewTextRecorder(w, columns...)}
	if len(pr.DBFile) != 0 {
		var db *results.SQLiteRecorder
		if db, err = results.NewSQLiteRecorder(pr.DBFile); err != nil {
			return
		}
		if err = db.Describe(ip.Title, mt.String()); err != nil {
			db.Close()
			return
		}
		rec = append(rec, db)
	}
	defer func() {
		if e := rec.Close(); e != nil && err == nil {
			err = e
		}
	}()
	return d.Run(paths, rec)
}
