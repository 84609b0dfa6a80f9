package colorconv

import (
	"fmt"

	"github.com/kovidgoyal/colormath/compand"
	"github.com/kovidgoyal/colormath/types"
)

var _ = fmt.Print

func check_unit(name string, vals ...float64) error {
	for _, v := range vals {
		if !(v >= 0 && v <= 1) {
			return domain_error("%s channels must be in [0, 1]: %v", name, vals)
		}
	}
	return nil
}

func RGBToCMY(rgb RGB) CMY {
	return CMY{
		Meta: rgb.Meta,
		C:    1 - float64(rgb.R)/255,
		M:    1 - float64(rgb.G)/255,
		Y:    1 - float64(rgb.B)/255,
	}
}

// CMYToRGB is the inverse of RGBToCMY, tagging the result with space since
// CMY carries no working space of its own.
func CMYToRGB(cmy CMY, space types.RGBSpace) (RGB, error) {
	if err := check_unit("CMY", cmy.C, cmy.M, cmy.Y); err != nil {
		return RGB{}, err
	}
	return RGB{
		Meta:     cmy.Meta,
		R:        compand.To8Bit(1 - cmy.C),
		G:        compand.To8Bit(1 - cmy.M),
		B:        compand.To8Bit(1 - cmy.Y),
		RGBSpace: space,
	}, nil
}

func CMYToCMYK(cmy CMY) (CMYK, error) {
	if err := check_unit("CMY", cmy.C, cmy.M, cmy.Y); err != nil {
		return CMYK{}, err
	}
	k := min(1, cmy.C, cmy.M, cmy.Y)
	ans := CMYK{Meta: cmy.Meta, K: k}
	if k == 1 {
		return ans, nil
	}
	ans.C = (cmy.C - k) / (1 - k)
	ans.M = (cmy.M - k) / (1 - k)
	ans.Y = (cmy.Y - k) / (1 - k)
	return ans, nil
}

func CMYKToCMY(cmyk CMYK) (CMY, error) {
	if err := check_unit("CMYK", cmyk.C, cmyk.M, cmyk.Y, cmyk.K); err != nil {
		return CMY{}, err
	}
	k := cmyk.K
	return CMY{
		Meta: cmyk.Meta,
		C:    cmyk.C*(1-k) + k,
		M:    cmyk.M*(1-k) + k,
		Y:    cmyk.Y*(1-k) + k,
	}, nil
}
