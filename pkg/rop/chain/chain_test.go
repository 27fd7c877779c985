package chain

import (
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/tryrop/pkg/rop"
)

func TestStart_Result_Success(t *testing.T) {
	t.Parallel()
	base := rop.Success(10)
	out := Start(base).Result()
	if !out.IsSuccess() || out.Get() != 10 {
		t.Fatalf("expected success with 10, got %v", out)
	}
	if out.Id() != base.Id() {
		t.Fatalf("Start must keep the wrapped result")
	}
}

func TestFromValue_Success(t *testing.T) {
	t.Parallel()
	out := FromValue(7).Result()
	if !out.IsSuccess() || out.Get() != 7 {
		t.Fatalf("expected success with 7, got %v", out)
	}
}

func TestFromTry(t *testing.T) {
	t.Parallel()
	out := FromTry(func() (int, error) { return strconv.Atoi("21") }).Result()
	if !out.IsSuccess() || out.Get() != 21 {
		t.Fatalf("expected success with 21, got %v", out)
	}

	out = FromTry(func() (int, error) { return strconv.Atoi("x") }).Result()
	if out.IsSuccess() {
		t.Fatalf("expected failure, got %v", out)
	}
}

func TestMap_SuccessAndFailure(t *testing.T) {
	t.Parallel()
	out := Map(FromValue(5), func(v int) string { return "n:" + strconv.Itoa(v) }).Result()
	if !out.IsSuccess() || out.Get() != "n:5" {
		t.Fatalf("expected success 'n:5', got %v", out)
	}

	out = Map(Start(rop.Fail[int](errors.New("oops"))), func(v int) string { return "ignored" }).Result()
	if out.IsSuccess() || out.Cause().Error() != "oops" {
		t.Fatalf("expected failure 'oops', got %v", out)
	}
}

func TestAndThen_SameAsMap(t *testing.T) {
	t.Parallel()
	out := AndThen(FromValue(2), func(v int) int { return v * 3 }).Result()
	if !out.IsSuccess() || out.Get() != 6 {
		t.Fatalf("expected success with 6, got %v", out)
	}

	out = AndThen(FromValue(2), func(v int) int { panic(errors.New("step")) }).Result()
	if out.IsSuccess() || out.Cause().Error() != "step" {
		t.Fatalf("expected failure 'step', got %v", out)
	}
}

func TestFlatMap_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	called := false
	out := FlatMap(Start(rop.Fail[int](err)), func(v int) rop.Result[string] {
		called = true
		return rop.Success("ok")
	}).Result()

	if out.IsSuccess() || out.Cause() != err {
		t.Fatalf("expected failure 'boom', got %v", out)
	}
	if called {
		t.Fatalf("FlatMap onSuccess must not be called on failure input")
	}
}

func TestTryMap_SuccessAndError(t *testing.T) {
	t.Parallel()
	out := TryMap(FromValue("3"), strconv.Atoi).Result()
	if !out.IsSuccess() || out.Get() != 3 {
		t.Fatalf("expected success 3, got %v", out)
	}

	out = TryMap(FromValue("three"), strconv.Atoi).Result()
	if out.IsSuccess() {
		t.Fatalf("expected failure, got %v", out)
	}
}

func TestPeek_SideEffectOnlyOnSuccess(t *testing.T) {
	t.Parallel()
	called := 0

	c := FromValue(11).Peek(func(v int) { called++ })
	if !c.Result().IsSuccess() || c.Result().Get() != 11 {
		t.Fatalf("expected success with 11, got %v", c.Result())
	}
	if called != 1 {
		t.Fatalf("expected side effect to be called once, got %d", called)
	}

	c = Start(rop.Fail[int](errors.New("x"))).Peek(func(v int) { called++ })
	if c.Result().IsSuccess() {
		t.Fatalf("expected failure, got success")
	}
	if called != 1 {
		t.Fatalf("expected side effect count to remain 1, got %d", called)
	}
}

func TestFinally_SuccessAndFailure(t *testing.T) {
	t.Parallel()
	s := Finally(FromValue(2),
		func(v int) string { return "ok" },
		func(err error) string { return "fail" },
	)
	if s != "ok" {
		t.Fatalf("expected 'ok', got %q", s)
	}

	f := Finally(Start(rop.Fail[int](errors.New("e"))),
		func(v int) string { return "ok" },
		func(err error) string { return "fail" },
	)
	if f != "fail" {
		t.Fatalf("expected 'fail', got %q", f)
	}
}

func TestChain_EndToEnd(t *testing.T) {
	t.Parallel()
	timeout := errors.New("timeout")
	multiplied := false

	c := FromTry(func() (int, error) { return 10 / 2, nil })
	c = Map(c, func(x int) int { return x + 1 })
	c = FlatMap(c, func(x int) rop.Result[int] { return rop.Fail[int](timeout) })
	c = Map(c, func(x int) int {
		multiplied = true
		return x * 100
	})

	out := c.Result()
	if out.IsSuccess() || out.Cause() != timeout {
		t.Fatalf("expected failure 'timeout', got %v", out)
	}
	if multiplied {
		t.Fatalf("Map must not run after a failure")
	}
}
