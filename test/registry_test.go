package test

import (
	"errors"
	"testing"

	"github.com/go-logr/logr/testr"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/suite"
	"github.com/wzugang/timeup"
)

// tagged records the order decorators run in.
type tagged struct {
	next  timeup.Callback[timeup.Notify]
	tag   string
	trace *[]string
}

func (t *tagged) Invoke(n timeup.Notify) (int, error) {
	*t.trace = append(*t.trace, t.tag)
	return t.next.Invoke(n)
}

func (t *tagged) String() string {
	return t.next.String()
}

func tag(name string, trace *[]string) timeup.Decorator[timeup.Notify] {
	return func(next timeup.Callback[timeup.Notify]) timeup.Callback[timeup.Notify] {
		return &tagged{next, name, trace}
	}
}

type RegistryTestSuite struct {
	suite.Suite
}

func (suite *RegistryTestSuite) scenario(opts ...timeup.Option) *timeup.Registry[timeup.Notify] {
	a, b := &Clock{MyTime: 2}, &Clock{MyTime: 5, Ticks: []int{0, 0, 0, 0, 0}}
	return timeup.NewRegistry[timeup.Notify](opts...).Add(
		timeup.Bind(a, (*Clock).Update),
		timeup.BindConst(b, Clock.UpdateConst),
		timeup.Func(func(n timeup.Notify) int { return n.CurTime }),
		timeup.Func(UpdateGlobal),
	)
}

func (suite *RegistryTestSuite) TestRegistry() {
	suite.Run("Empty", func() {
		registry := timeup.NewRegistry[timeup.Notify]()
		suite.Equal(0, registry.Len())
		results, err := registry.Notify(timeup.Notify{CurTime: 4})
		suite.Nil(err)
		suite.Empty(results)
	})

	suite.Run("Insertion Order", func() {
		results, err := suite.scenario().Notify(timeup.Notify{CurTime: 4})
		suite.Nil(err)
		suite.Equal([]int{6, 20, 4, 104}, results)
	})

	suite.Run("No Dedup", func() {
		cb := timeup.Func(UpdateGlobal)
		registry := timeup.NewRegistry[timeup.Notify]().Add(cb, cb)
		suite.Equal(2, registry.Len())
		results, err := registry.Notify(timeup.Notify{CurTime: 1})
		suite.Nil(err)
		suite.Equal([]int{101, 101}, results)
	})

	suite.Run("Independent", func() {
		clock := &Clock{MyTime: 1}
		other := &Clock{MyTime: 1}
		registry := timeup.NewRegistry[timeup.Notify]().Add(
			timeup.Bind(clock, (*Clock).Update),
			timeup.Bind(other, (*Clock).Update))
		for i := 0; i < 3; i++ {
			results, err := registry.Notify(timeup.Notify{CurTime: 1})
			suite.Nil(err)
			suite.Equal([]int{2, 2}, results)
		}
		suite.Len(clock.Ticks, 3)
		suite.Len(other.Ticks, 3)
	})

	suite.Run("Callbacks", func() {
		registry := suite.scenario()
		callbacks := registry.Callbacks()
		suite.Len(callbacks, 4)
		callbacks[0] = nil
		suite.NotNil(registry.Callbacks()[0])

		var indices []int
		for i, cb := range registry.All() {
			suite.NotNil(cb)
			indices = append(indices, i)
			if i == 2 {
				break
			}
		}
		suite.Equal([]int{0, 1, 2}, indices)
	})

	suite.Run("Nil Callback", func() {
		suite.PanicsWithValue("callback cannot be nil", func() {
			timeup.NewRegistry[timeup.Notify]().Add(nil)
		})
	})
}

func (suite *RegistryTestSuite) TestErrors() {
	suite.Run("Continue", func() {
		registry := timeup.NewRegistry[timeup.Notify](
			timeup.WithLogger(testr.New(suite.T()))).Add(
			timeup.FuncE(TryUpdateGlobal),
			timeup.BindE(&Clock{}, (*Clock).TryUpdate),
			timeup.Func(func(n timeup.Notify) int { return 42 }))
		results, err := registry.Notify(timeup.Notify{CurTime: -1})
		suite.Equal([]int{0, 0, 42}, results)
		suite.ErrorIs(err, errStopped)

		var merr *multierror.Error
		suite.Require().True(errors.As(err, &merr))
		suite.Len(merr.Errors, 2)
		var invalid *timeup.InvokeError
		suite.Require().True(errors.As(merr.Errors[1], &invalid))
		suite.Equal(1, invalid.Index)
		suite.Same(errStopped, invalid.Reason)
	})

	suite.Run("Stop", func() {
		clock := &Clock{}
		registry := timeup.NewRegistry[timeup.Notify](timeup.StopOnError()).Add(
			timeup.Func(func(n timeup.Notify) int { return 1 }),
			timeup.FuncE(TryUpdateGlobal),
			timeup.Bind(clock, (*Clock).Update))
		results, err := registry.Notify(timeup.Notify{CurTime: -1})
		suite.Equal([]int{1}, results)
		var invalid *timeup.InvokeError
		suite.Require().ErrorAs(err, &invalid)
		suite.Equal(1, invalid.Index)
		suite.ErrorIs(err, errStopped)
		suite.Empty(clock.Ticks)
	})
}

func (suite *RegistryTestSuite) TestDecorators() {
	suite.Run("Order", func() {
		var trace []string
		registry := timeup.NewRegistry[timeup.Notify]().
			Add(timeup.Func(UpdateGlobal)).
			Use(tag("outer", &trace), tag("inner", &trace))
		results, err := registry.Notify(timeup.Notify{CurTime: 1})
		suite.Nil(err)
		suite.Equal([]int{101}, results)
		suite.Equal([]string{"outer", "inner"}, trace)
	})

	suite.Run("Applies To Later Callbacks", func() {
		var trace []string
		registry := timeup.NewRegistry[timeup.Notify]().Use(tag("t", &trace))
		registry.Add(timeup.Func(UpdateGlobal), timeup.Func(UpdateGlobal))
		_, err := registry.Notify(timeup.Notify{})
		suite.Nil(err)
		suite.Equal([]string{"t", "t"}, trace)
	})

	suite.Run("Nil Decorator", func() {
		suite.PanicsWithValue("decorator cannot be nil", func() {
			timeup.NewRegistry[timeup.Notify]().Use(nil)
		})
	})
}

func TestRegistryTestSuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}
