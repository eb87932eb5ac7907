package persistence

import (
	"os"

	"github.com/NeilSeligmann/libloadorder/internal/domain"
	"github.com/NeilSeligmann/libloadorder/internal/probe"
)

// IsSynchronised reports whether the load-order file and the
// active-plugins file agree. For Timestamp games there is only one
// persistence mechanism, so the two can never disagree.
func IsSynchronised(profile domain.GameProfile, p probe.PluginProbe) (bool, error) {
	if profile.Method != domain.Textfile {
		return true, nil
	}

	orderNames, orderExisted, err := readLines(profile.LoadOrderFile)
	if err != nil {
		return false, err
	}
	if !orderExisted {
		return true, nil
	}

	if _, err := os.Stat(profile.ActivePluginsFile); err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, domain.Wrap(domain.ErrKindIO, "statting active plugins file", err)
	}

	activeNames, err := ReadActivePlugins(profile, p)
	if err != nil {
		return false, err
	}

	var orderedActive []string
	for _, name := range orderNames {
		if containsFold(activeNames, name) {
			orderedActive = append(orderedActive, name)
		}
	}

	return sameSetCaseInsensitive(orderedActive, activeNames), nil
}

func sameSetCaseInsensitive(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for _, name := range a {
		if !containsFold(b, name) {
			return false
		}
	}
	return true
}
