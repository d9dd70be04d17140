// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/numerics/codec"
	"github.com/katalvlaran/numerics/internal/render"
	"github.com/katalvlaran/numerics/linalg"
	"github.com/katalvlaran/numerics/scalar"
)

// byScalar runs the instantiation matching the configured scalar type.
func byScalar(name string, f64, c128, i64 func() error) error {
	switch name {
	case "complex128":
		return c128()
	case "int64":
		return i64()
	}

	return f64()
}

// warnLaplace logs when a cofactor expansion is about to run on a large input.
func warnLaplace(logger *slog.Logger, op string, dim int) {
	if dim > linalg.MaxLaplaceDim {
		logger.Warn("cofactor expansion on large matrix, expect a long run",
			"op", op, "dim", dim, "max", linalg.MaxLaplaceDim)
	}
}

func loadMatrix[T scalar.Scalar](cmd *cobra.Command, path string) (*linalg.Matrix[T], error) {
	m, err := codec.ReadMatrixFile[T](path)
	if err != nil {
		return nil, err
	}
	GetLogger(cmd.Context()).Debug("matrix loaded",
		"file", path, "rows", m.Rows(), "cols", m.Cols(), "scalar", scalar.TypeName[T]())

	return m, nil
}

func loadSquare[T scalar.Scalar](cmd *cobra.Command, path string) (*linalg.SquareMatrix[T], error) {
	doc, err := codec.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := codec.Square[T](doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	GetLogger(cmd.Context()).Debug("square matrix loaded",
		"file", path, "dim", s.Dim(), "scalar", scalar.TypeName[T]())

	return s, nil
}

// ---------- det ----------

func newDetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "det FILE",
		Short: "Determinant of a square matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return byScalar(GetConfig(cmd.Context()).Scalar,
				func() error { return runDet[float64](cmd, args[0]) },
				func() error { return runDet[complex128](cmd, args[0]) },
				func() error { return runDet[int64](cmd, args[0]) },
			)
		},
	}
}

func runDet[T scalar.Scalar](cmd *cobra.Command, path string) error {
	s, err := loadSquare[T](cmd, path)
	if err != nil {
		return err
	}
	warnLaplace(GetLogger(cmd.Context()), "det", s.Dim())
	r, err := newRenderer(cmd)
	if err != nil {
		return err
	}

	return render.Scalar(r, "det", s.Determinant())
}

// ---------- inv ----------

func newInvCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inv FILE",
		Short: "Inverse of a square matrix by the adjugate",
		Long: `Computes adj(A)/det(A). Fails when the determinant is zero.
With --scalar int64 the division truncates, so the result is exact only for
unimodular matrices; a warning is logged when A·A⁻¹ differs from I by more
than --epsilon.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return byScalar(GetConfig(cmd.Context()).Scalar,
				func() error { return runInv[float64](cmd, args[0]) },
				func() error { return runInv[complex128](cmd, args[0]) },
				func() error { return runInv[int64](cmd, args[0]) },
			)
		},
	}
}

func runInv[T scalar.Scalar](cmd *cobra.Command, path string) error {
	logger := GetLogger(cmd.Context())
	s, err := loadSquare[T](cmd, path)
	if err != nil {
		return err
	}
	warnLaplace(logger, "inv", s.Dim())
	inv, err := s.Inverse()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	eps := GetConfig(cmd.Context()).Epsilon
	prod, err := s.Mul(inv)
	if err != nil {
		return err
	}
	id, err := linalg.Identity[T](s.Dim())
	if err != nil {
		return err
	}
	if !prod.EqualApprox(id, linalg.WithEpsilon(eps)) {
		logger.Warn("A·A⁻¹ is not the identity within epsilon", "epsilon", eps)
	}

	r, err := newRenderer(cmd)
	if err != nil {
		return err
	}

	return render.Matrix[T](r, codec.KindSquare, inv)
}

// ---------- transpose ----------

func newTransposeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "transpose FILE",
		Short: "Transpose of a matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return byScalar(GetConfig(cmd.Context()).Scalar,
				func() error { return runTranspose[float64](cmd, args[0]) },
				func() error { return runTranspose[complex128](cmd, args[0]) },
				func() error { return runTranspose[int64](cmd, args[0]) },
			)
		},
	}
}

func runTranspose[T scalar.Scalar](cmd *cobra.Command, path string) error {
	m, err := loadMatrix[T](cmd, path)
	if err != nil {
		return err
	}
	r, err := newRenderer(cmd)
	if err != nil {
		return err
	}

	return render.Matrix[T](r, codec.KindMatrix, m.Transpose())
}

// ---------- mul ----------

func newMulCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mul A B",
		Short: "Matrix product A×B",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return byScalar(GetConfig(cmd.Context()).Scalar,
				func() error { return runMul[float64](cmd, args[0], args[1]) },
				func() error { return runMul[complex128](cmd, args[0], args[1]) },
				func() error { return runMul[int64](cmd, args[0], args[1]) },
			)
		},
	}
}

func runMul[T scalar.Scalar](cmd *cobra.Command, pathA, pathB string) error {
	a, err := loadMatrix[T](cmd, pathA)
	if err != nil {
		return err
	}
	b, err := loadMatrix[T](cmd, pathB)
	if err != nil {
		return err
	}
	p, err := a.Mul(b)
	if err != nil {
		return err
	}
	r, err := newRenderer(cmd)
	if err != nil {
		return err
	}

	return render.Matrix[T](r, codec.KindMatrix, p)
}

// ---------- pow ----------

func newPowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pow FILE N",
		Short: "Integer power of a square matrix (N >= 1)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("pow: degree %q: %w", args[1], err)
			}

			return byScalar(GetConfig(cmd.Context()).Scalar,
				func() error { return runPow[float64](cmd, args[0], n) },
				func() error { return runPow[complex128](cmd, args[0], n) },
				func() error { return runPow[int64](cmd, args[0], n) },
			)
		},
	}
}

func runPow[T scalar.Scalar](cmd *cobra.Command, path string, n int) error {
	s, err := loadSquare[T](cmd, path)
	if err != nil {
		return err
	}
	p, err := s.Pow(n)
	if err != nil {
		return err
	}
	r, err := newRenderer(cmd)
	if err != nil {
		return err
	}

	return render.Matrix[T](r, codec.KindSquare, p)
}

// ---------- norm ----------

func newNormCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "norm FILE",
		Short: "Euclidean norm of a vector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return byScalar(GetConfig(cmd.Context()).Scalar,
				func() error { return runNorm(cmd, args[0], linalg.Norm[float64]) },
				func() error { return runNorm(cmd, args[0], linalg.ComplexNorm[complex128]) },
				func() error { return runNorm(cmd, args[0], linalg.Norm[int64]) },
			)
		},
	}
}

func runNorm[T scalar.Scalar](cmd *cobra.Command, path string, norm func(*linalg.Vector[T]) float64) error {
	doc, err := codec.ReadFile(path)
	if err != nil {
		return err
	}
	v, err := codec.Vector[T](doc)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	GetLogger(cmd.Context()).Debug("vector loaded", "file", path, "len", v.Len())
	r, err := newRenderer(cmd)
	if err != nil {
		return err
	}

	return render.Scalar(r, "norm", norm(v))
}

// ---------- equal ----------

func newEqualCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "equal A B",
		Short: "Report whether two matrices agree within --epsilon",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return byScalar(GetConfig(cmd.Context()).Scalar,
				func() error { return runEqual[float64](cmd, args[0], args[1]) },
				func() error { return runEqual[complex128](cmd, args[0], args[1]) },
				func() error { return runEqual[int64](cmd, args[0], args[1]) },
			)
		},
	}
}

func runEqual[T scalar.Scalar](cmd *cobra.Command, pathA, pathB string) error {
	a, err := loadMatrix[T](cmd, pathA)
	if err != nil {
		return err
	}
	b, err := loadMatrix[T](cmd, pathB)
	if err != nil {
		return err
	}
	eq := a.EqualApprox(b, linalg.WithEpsilon(GetConfig(cmd.Context()).Epsilon))
	_, err = fmt.Fprintln(cmd.OutOrStdout(), eq)

	return err
}
