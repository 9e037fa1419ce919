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
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gomate/quadrature"
)

// QuadratureCmd represents the quadrature command
var QuadratureCmd = &cobra.Command{
	Use:   "quadrature",
	Short: "Print the quadrature points of a rule on a reference element",
	Long: `
Prints the points and weights of a Gauss-Legendre or Gauss-Lobatto rule on the
reference line, quadrilateral or hexahedron [-1,1]^dim, x fastest.

gomate quadrature --rule legendre --order 3 --geometry hex`,
	Run: func(cmd *cobra.Command, args []string) {
		rule, _ := cmd.Flags().GetString("rule")
		order, _ := cmd.Flags().GetInt("order")
		geom, _ := cmd.Flags().GetString("geometry")
		if err := PrintQuadrature(os.Stdout, rule, order, geom); err != nil {
			log.Fatalf("error: %s", err.Error())
		}
	},
}

func init() {
	rootCmd.AddCommand(QuadratureCmd)
	QuadratureCmd.Flags().StringP("rule", "r", "legendre", "quadrature rule: legendre or lobatto")
	QuadratureCmd.Flags().IntP("order", "o", 2, "polynomial order integrated exactly")
	QuadratureCmd.Flags().StringP("geometry", "g", "quad", "reference element: line, quad or hex")
}

func PrintQuadrature(w io.Writer, rule string, order int, geom string) (err error) {
	var (
		gt  quadrature.GeneratorType
		gk  quadrature.GeometryKind
		g   quadrature.Generator
		pts []quadrature.Point
	)
	if gt, err = quadrature.NewGeneratorType(rule); err != nil {
		return
	}
	if gk, err = quadrature.NewGeometryKind(geom); err != nil {
		return
	}
	if g, err = quadrature.NewGenerator(gt); err != nil {
		return
	}
	if pts, err = g.Generate(order, gk); err != nil {
		return
	}
	fmt.Fprintf(w, "%s, order %d, %s, %d points\n", gt, order, gk, len(pts))
	ws := make([]float64, len(pts))
	for i, pt := range pts {
		fmt.Fprintf(w, "%4d", i)
		for d := 0; d < gk.Dimension(); d++ {
			fmt.Fprintf(w, " %22.16f", pt.X[d])
		}
		fmt.Fprintf(w, " %22.16f\n", pt.W)
		ws[i] = pt.W
	}
	fmt.Fprintf(w, "sum of weights = %.16f\n", floats.Sum(ws))
	return
}
