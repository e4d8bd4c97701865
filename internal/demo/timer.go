package demo

import "github.com/wzugang/timeup"

type (
	// BaseA and BaseB are unrelated capabilities embedded by
	// Timer.  Binding stays typed to *Timer regardless.
	BaseA struct{}
	BaseB struct{}

	// Timer receives time up notifications.
	Timer struct {
		BaseA
		BaseB
		MyTime int
		Calls  int
	}
)

func (BaseA) FuncBaseA() {}

func (BaseB) FuncBaseB() {}

// Update adds the Timer's time and counts the call.
func (t *Timer) Update(n timeup.Notify) int {
	t.Calls++
	return n.CurTime + t.MyTime
}

// UpdateConst scales by the Timer's time.
func (t Timer) UpdateConst(n timeup.Notify) int {
	return n.CurTime * t.MyTime
}

// UpdateStatic returns the current time unchanged.
func UpdateStatic(n timeup.Notify) int {
	return n.CurTime
}

// UpdateGlobal offsets the current time by 100.
func UpdateGlobal(n timeup.Notify) int {
	return n.CurTime + 100
}

// Register adds one callback of every kind to registry:
// a.Update, b.UpdateConst, UpdateStatic and UpdateGlobal.
func Register(
	registry *timeup.Registry[timeup.Notify],
	a, b     *Timer,
) *timeup.Registry[timeup.Notify] {
	return registry.Add(
		timeup.Bind(a, (*Timer).Update),
		timeup.BindConst(b, Timer.UpdateConst),
		timeup.Func(UpdateStatic),
		timeup.Func(UpdateGlobal),
	)
}
