package num

func (u UInt[S]) MarshalText() ([]byte, error) {
	return []byte(u.AsBigInt().String()), nil
}

func (u *UInt[S]) UnmarshalText(bts []byte) (err error) {
	v, acc, err := UIntFromString[S](string(bts), 10)
	if err != nil {
		return err
	} else if !acc {
		return errorf(ErrSize, "%q does not fit in uint%d", bts, v.Bits())
	}
	*u = v
	return nil
}

func (u UInt[S]) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.AsBigInt().String() + `"`), nil
}

func (u *UInt[S]) UnmarshalJSON(bts []byte) (err error) {
	bts, err = unquoteJSON(bts, "uint")
	if err != nil {
		return err
	}
	return u.UnmarshalText(bts)
}

func (i Int[S]) MarshalText() ([]byte, error) {
	return []byte(i.AsBigInt().String()), nil
}

func (i *Int[S]) UnmarshalText(bts []byte) (err error) {
	v, acc, err := IntFromString[S](string(bts), 10)
	if err != nil {
		return err
	} else if !acc {
		return errorf(ErrSize, "%q does not fit in int%d", bts, v.Bits())
	}
	*i = v
	return nil
}

func (i Int[S]) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.AsBigInt().String() + `"`), nil
}

func (i *Int[S]) UnmarshalJSON(bts []byte) (err error) {
	bts, err = unquoteJSON(bts, "int")
	if err != nil {
		return err
	}
	return i.UnmarshalText(bts)
}

// unquoteJSON accepts both quoted and bare numbers.
func unquoteJSON(bts []byte, kind string) ([]byte, error) {
	if len(bts) == 0 {
		return nil, errorf(ErrInvalidString, "%s empty JSON", kind)
	}
	if bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return nil, errorf(ErrInvalidString, "%s invalid JSON %q", kind, string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return bts, nil
}
