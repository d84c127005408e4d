package types

// EffectOutcome 次要写操作的执行结果，失败不影响主操作
type EffectOutcome struct {
	Name string
	Err  error
}

func (e EffectOutcome) OK() bool { return e.Err == nil }

type Effects []EffectOutcome

// Failed 失败的次要操作
func (e Effects) Failed() Effects {
	var out Effects
	for _, o := range e {
		if !o.OK() {
			out = append(out, o)
		}
	}
	return out
}

// Find 按名称查找
func (e Effects) Find(name string) (EffectOutcome, bool) {
	for _, o := range e {
		if o.Name == name {
			return o, true
		}
	}
	return EffectOutcome{}, false
}
