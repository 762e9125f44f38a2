package async_test

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ib-77/either3/pkg/either"
	"github.com/ib-77/either3/pkg/either/async"
)

func double(n int) *async.Pending[int] {
	return async.Go(func() (int, error) {
		return n * 2, nil
	})
}

var _ = Describe("Async operations", func() {
	var (
		ctx   context.Context
		calls atomic.Int32
	)

	BeforeEach(func() {
		ctx = context.Background()
		calls.Store(0)
	})

	counted := func(n int) *async.Pending[int] {
		calls.Add(1)
		return double(n)
	}

	Describe("Map", func() {
		It("transforms a Right asynchronously", func() {
			got, err := async.Map(either.Right[string](21), counted).Await(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(either.Right[string](42)))
			Expect(calls.Load()).To(BeEquivalentTo(1))
		})

		It("returns a Left unchanged without calling f", func() {
			p := async.Map(either.Left[int]("bad"), counted)
			Expect(p.Settled()).To(BeTrue())
			Expect(p.Await(ctx)).To(Equal(either.Left[int]("bad")))
			Expect(calls.Load()).To(BeZero())
		})

		It("rejects when f returns nil", func() {
			_, err := async.Map(either.Right[string](1), func(int) *async.Pending[int] {
				return nil
			}).Await(ctx)
			Expect(err).To(MatchError(async.ErrNilPending))
		})
	})

	Describe("MapLeft", func() {
		It("transforms a Left asynchronously", func() {
			got, err := async.MapLeft(either.Left[string](4), counted).Await(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(either.Left[string](8)))
		})

		It("returns a Right unchanged without calling f", func() {
			Expect(async.MapLeft(either.Right[int]("ok"), counted).Await(ctx)).
				To(Equal(either.Right[int]("ok")))
			Expect(calls.Load()).To(BeZero())
		})
	})

	Describe("FlatMap", func() {
		parse := func(s string) *async.Pending[either.Either[error, int]] {
			return async.Go(func() (either.Either[error, int], error) {
				return either.FromTuple(strconv.Atoi(s)), nil
			})
		}

		It("chains a step that may fail", func() {
			Expect(async.FlatMap(either.Right[error]("12"), parse).Await(ctx)).
				To(Equal(either.Right[error](12)))

			got, err := async.FlatMap(either.Right[error]("x"), parse).Await(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.IsLeft()).To(BeTrue())
		})

		It("short-circuits on a Left", func() {
			boom := errors.New("boom")
			Expect(async.FlatMap(either.Left[string](boom), parse).Await(ctx)).
				To(Equal(either.Left[int](boom)))
		})
	})

	Describe("FlatMapLeft", func() {
		heal := func(msg string) *async.Pending[either.Either[int, int]] {
			return async.Resolved(either.Right[int](len(msg)))
		}

		It("recovers a Left", func() {
			Expect(async.FlatMapLeft(either.Left[int]("four"), heal).Await(ctx)).
				To(Equal(either.Right[int](4)))
		})

		It("keeps a Right", func() {
			Expect(async.FlatMapLeft(either.Right[string](9), heal).Await(ctx)).
				To(Equal(either.Right[int](9)))
		})
	})

	Describe("Fold", func() {
		describe := func(e either.Either[error, int]) *async.Pending[string] {
			return async.Fold(e,
				async.Lift(func(err error) string { return "failed: " + err.Error() }),
				func(n int) *async.Pending[string] {
					return async.Go(func() (string, error) {
						return strconv.Itoa(n), nil
					})
				},
			)
		}

		It("invokes the handler for the held side", func() {
			Expect(describe(either.Right[error](5)).Await(ctx)).To(Equal("5"))
			Expect(describe(either.Left[int](errors.New("x"))).Await(ctx)).To(Equal("failed: x"))
		})
	})

	Describe("OnLeft and OnRight", func() {
		It("runs only the matching handler and completes after it", func() {
			var seen atomic.Value
			handler := func(v string) *async.Pending[async.Unit] {
				return async.Go(func() (async.Unit, error) {
					seen.Store(v)
					return async.Unit{}, nil
				})
			}

			done := async.OnLeft(either.Left[int]("l"), handler)
			Eventually(done.Done()).Should(BeClosed())
			Expect(seen.Load()).To(Equal("l"))

			skipped := async.OnRight(either.Left[string]("l2"), handler)
			Expect(skipped.Settled()).To(BeTrue())
			Expect(seen.Load()).To(Equal("l"))

			done = async.OnRight(either.Right[int]("r"), handler)
			Eventually(done.Done()).Should(BeClosed())
			Expect(seen.Load()).To(Equal("r"))
		})

		It("propagates a handler failure", func() {
			boom := errors.New("boom")
			_, err := async.OnRight(either.Right[int]("r"), func(string) *async.Pending[async.Unit] {
				return async.Rejected[async.Unit](boom)
			}).Await(ctx)
			Expect(err).To(MatchError(boom))
		})
	})

	Describe("TryE", func() {
		It("resolves to a Right when the pending resolves", func() {
			got, err := async.TryE(func() *async.Pending[string] {
				return async.Go(func() (string, error) { return "S", nil })
			}).Await(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(either.Right[error]("S")))
		})

		It("resolves to a Left when the pending rejects", func() {
			boom := errors.New("F")
			got, err := async.TryE(func() *async.Pending[string] {
				return async.Go(func() (string, error) { return "", boom })
			}).Await(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(either.Left[string](boom)))
		})

		It("resolves to a Left when the thunk panics before returning", func() {
			p := async.TryE(func() *async.Pending[string] {
				panic("early")
			})
			Expect(p.Settled()).To(BeTrue())

			got, err := p.Await(ctx)
			Expect(err).NotTo(HaveOccurred())
			l, ok := got.LeftValue()
			Expect(ok).To(BeTrue())
			var pe *either.PanicError
			Expect(errors.As(l, &pe)).To(BeTrue())
		})

		It("never rejects", func() {
			p := async.TryE(func() *async.Pending[int] {
				return async.Go(func() (int, error) { panic(errors.New("late")) })
			})
			Eventually(p.Done()).Should(BeClosed())

			got, err := p.Await(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.IsLeft()).To(BeTrue())
		})

		It("reports a nil pending as a Left", func() {
			got, _ := async.TryE(func() *async.Pending[int] { return nil }).Await(ctx)
			Expect(got).To(Equal(either.Left[int](async.ErrNilPending)))
		})
	})
})
