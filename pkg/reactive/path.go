package reactive

import (
	"errors"
	"strconv"
	"strings"

	rkerrors "github.com/vango-dev/reactkit/internal/errors"
)

// SplitPath splits a dotted path into segments. The empty path addresses the
// root value and has no segments.
func SplitPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}

// GetPath returns the value at a dotted path below the root, such as
// "users.0.name". Array elements are addressed by decimal index. Every
// segment read records a dependency like a direct Get would.
func GetPath(r *Root, path string) (any, error) {
	cur := r.Value()
	for i, seg := range SplitPath(path) {
		next, err := child(cur, seg)
		if err != nil {
			return nil, pathError(err, path, i)
		}
		cur = next
	}
	return cur, nil
}

// SetPath stores v at a dotted path. The parent of the last segment must
// exist; an empty path replaces the root value.
func SetPath(r *Root, path string, v any) error {
	segs := SplitPath(path)
	if len(segs) == 0 {
		r.Set(v)
		return nil
	}
	parent, err := parentOf(r, path, segs)
	if err != nil {
		return err
	}
	last := segs[len(segs)-1]
	switch p := parent.(type) {
	case *Object:
		p.Set(last, v)
		return nil
	case *Array:
		i, err := strconv.Atoi(last)
		if err != nil || !p.Set(i, v) {
			return pathError(ErrPathNotFound, path, len(segs)-1)
		}
		return nil
	}
	return pathError(ErrNotContainer, path, len(segs)-2)
}

// DeletePath removes the property at a dotted path. Only the last element
// of an array can be removed.
func DeletePath(r *Root, path string) error {
	segs := SplitPath(path)
	if len(segs) == 0 {
		return pathError(ErrNotContainer, path, 0)
	}
	parent, err := parentOf(r, path, segs)
	if err != nil {
		return err
	}
	last := segs[len(segs)-1]
	switch p := parent.(type) {
	case *Object:
		if !p.Delete(last) {
			return pathError(ErrPathNotFound, path, len(segs)-1)
		}
		return nil
	case *Array:
		i, err := strconv.Atoi(last)
		if err != nil || i != p.Len()-1 {
			return pathError(ErrPathNotFound, path, len(segs)-1)
		}
		p.Pop()
		return nil
	}
	return pathError(ErrNotContainer, path, len(segs)-2)
}

// WatchPath watches the value at a dotted path. Missing paths are watched as
// nil.
func WatchPath(r *Root, path string, effect func(newVal, oldVal any)) (*WatchHandle, error) {
	return Watch(func() any {
		v, _ := GetPath(r, path)
		return v
	}, effect)
}

func parentOf(r *Root, path string, segs []string) (any, error) {
	cur := r.Value()
	for i, seg := range segs[:len(segs)-1] {
		next, err := child(cur, seg)
		if err != nil {
			return nil, pathError(err, path, i)
		}
		cur = next
	}
	return cur, nil
}

func child(cur any, seg string) (any, error) {
	switch c := cur.(type) {
	case *Object:
		v, ok := c.Lookup(seg)
		if !ok {
			return nil, ErrPathNotFound
		}
		return v, nil
	case *Array:
		i, err := strconv.Atoi(seg)
		if err != nil {
			return nil, ErrPathNotFound
		}
		v, ok := c.Lookup(i)
		if !ok {
			return nil, ErrPathNotFound
		}
		return v, nil
	}
	return nil, ErrNotContainer
}

func pathError(err error, path string, seg int) error {
	code := "R004"
	if errors.Is(err, ErrNotContainer) {
		code = "R005"
	}
	segs := SplitPath(path)
	at := path
	if seg >= 0 && seg < len(segs) {
		at = strings.Join(segs[:seg+1], ".")
	}
	return rkerrors.New(code).
		WithDetail("path " + strconv.Quote(path) + " fails at " + strconv.Quote(at)).
		Wrap(err)
}
