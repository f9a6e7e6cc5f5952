package state

import "fmt"

func (r Role) MarshalText() ([]byte, error) {
	if _, ok := roleNames[r]; !ok {
		return nil, fmt.Errorf("cannot marshal role %d", r)
	}
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(text []byte) error {
	v, err := parseEnum(roleNames, "role", string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

func (t LinkType) MarshalText() ([]byte, error) {
	if _, ok := linkTypeNames[t]; !ok {
		return nil, fmt.Errorf("cannot marshal link type %d", t)
	}
	return []byte(t.String()), nil
}

func (t *LinkType) UnmarshalText(text []byte) error {
	v, err := parseEnum(linkTypeNames, "link type", string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func (v Verdict) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Verdict) UnmarshalText(text []byte) error {
	x, err := parseEnum(verdictNames, "verdict", string(text))
	if err != nil {
		return err
	}
	*v = x
	return nil
}

func (p Policy) MarshalText() ([]byte, error) {
	if p >= NumPolicies {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPolicy, p)
	}
	return []byte(p.String()), nil
}

func (p *Policy) UnmarshalText(text []byte) error {
	x, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = x
	return nil
}

func (k MessageKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *MessageKind) UnmarshalText(text []byte) error {
	x, err := parseEnum(map[MessageKind]string{MsgInit: "Init", MsgUpdate: "Update"}, "message type", string(text))
	if err != nil {
		return err
	}
	*k = x
	return nil
}

func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Path) UnmarshalText(text []byte) error {
	x, err := ParsePath(string(text))
	if err != nil {
		return err
	}
	*p = x
	return nil
}
