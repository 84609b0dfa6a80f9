/*
Package colormath converts color measurements between colorimetric
representations: spectral samples, CIE XYZ, xyY, L*a*b*, L*u*v*, their LCH
polar forms, device RGB working spaces and the subtractive CMY/CMYK models.

An Engine picks the shortest chain of individual conversions between a
source and a destination space and threads illuminant and observer
metadata through it. The individual conversions live in the colorconv
package, the reference data they consume in the tables package.

All conversions are pure functions of their inputs and the read-only
tables, so an Engine may be shared freely between goroutines.
*/
package colormath

import "fmt"

type ColormathVersion struct {
	Major, Minor, Patch uint
}

func (v ColormathVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

var Version = ColormathVersion{1, 0, 0}
