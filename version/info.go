// Package version describes the build of the tool embedding the probe.
package version

import "fmt"

type Version struct {
	Major, Minor, Patch int
}

func (v Version) String() string {
	return fmt.Sprintf("%v.%v.%v", v.Major, v.Minor, v.Patch)
}

type Info struct {
	Name       string
	Version    Version
	Vendor     string
	SupportURL string
}

func (i Info) String() string {
	if i.Name == "" {
		return i.Version.String()
	}

	return fmt.Sprintf("%v %v", i.Name, i.Version)
}
