package chain

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qmark-go/result/pkg/result"
)

func divide(a, b float64) result.Result[float64, string] {
	if b == 0 {
		return result.Err[float64]("division by zero")
	}
	return result.Ok[float64, string](a / b)
}

func sqrt(x float64) result.Result[float64, string] {
	if x < 0 {
		return result.Err[float64]("negative input")
	}
	return result.Ok[float64, string](math.Sqrt(x))
}

func TestThen(t *testing.T) {
	r := From[float64, string](16.0).
		Then(func(x float64) result.Result[float64, string] { return divide(x, 4) }).
		Then(sqrt).
		Result()
	assert.True(t, r.Equal(result.Ok[float64, string](2.0)))
}

func TestThenShortCircuits(t *testing.T) {
	r := Start(result.Err[float64]("boom")).
		Then(func(float64) result.Result[float64, string] {
			t.Fatal("step invoked on a failed chain")
			return result.Err[float64]("")
		}).
		Result()
	assert.True(t, r.Equal(result.Err[float64]("boom")))
}

func TestOrElseRecovers(t *testing.T) {
	r := Start(result.Err[float64]("e")).
		OrElse(func(string) result.Result[float64, string] {
			return result.Ok[float64, string](10)
		}).
		Then(sqrt).
		Result()
	assert.True(t, r.Equal(result.Ok[float64, string](math.Sqrt(10))))
}

func TestOrElseSkippedOnSuccess(t *testing.T) {
	r := From[int, string](1).
		OrElse(func(string) result.Result[int, string] {
			t.Fatal("recovery invoked on a successful chain")
			return result.Err[int]("")
		}).
		Result()
	assert.True(t, r.Equal(result.Ok[int, string](1)))
}

func TestMapMethod(t *testing.T) {
	r := From[int, string](3).
		Map(func(v int) int { return v * 2 }).
		Result()
	assert.True(t, r.Equal(result.Ok[int, string](6)))
}

func TestEnsure(t *testing.T) {
	var seenOk []int
	var seenErr []string

	From[int, string](3).Ensure(func(v int) { seenOk = append(seenOk, v) }, nil)
	Start(result.Err[int]("boom")).Ensure(nil, func(e string) { seenErr = append(seenErr, e) })

	assert.Equal(t, []int{3}, seenOk)
	assert.Equal(t, []string{"boom"}, seenErr)
}

func TestOrAnd(t *testing.T) {
	okc := From[int, string](1)
	failed := Start(result.Err[int]("boom"))

	assert.True(t, failed.Or(okc).Result().Equal(result.Ok[int, string](1)))
	assert.True(t, okc.Or(failed).Result().Equal(result.Ok[int, string](1)))
	assert.True(t, okc.And(failed).Result().Equal(result.Err[int]("boom")))
	assert.True(t, failed.And(okc).Result().Equal(result.Err[int]("boom")))
}

func TestTypeChangingSteps(t *testing.T) {
	c := Map(From[int, string](41), func(v int) string {
		return strconv.Itoa(v + 1)
	})
	r := Then(c, func(s string) result.Result[int, string] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return result.Err[int](err.Error())
		}
		return result.Ok[int, string](n)
	}).Result()
	assert.True(t, r.Equal(result.Ok[int, string](42)))
}

func TestThenTry(t *testing.T) {
	c := ThenTry(From[string, error]("21"), strconv.Atoi)
	assert.Equal(t, 21, c.Result().Unwrap())

	bad := ThenTry(From[string, error]("nope"), strconv.Atoi)
	assert.True(t, bad.Result().IsErr())
}

func TestFinally(t *testing.T) {
	msg := Finally(
		Then(From[float64, string](16.0), sqrt),
		func(v float64) string { return "ok" },
		func(e string) string { return "failed: " + e },
	)
	assert.Equal(t, "ok", msg)

	msg = Finally(
		Then(From[float64, string](-1.0), sqrt),
		func(float64) string { return "ok" },
		func(e string) string { return "failed: " + e },
	)
	assert.Equal(t, "failed: negative input", msg)
}
