package compose

import (
	"strings"

	"git.home.luguber.info/inful/genreadme/internal/addon"
)

// Badge is one shields.io badge reference emitted in the README header.
type Badge struct {
	Image  string
	Target string
	Alt    string
}

var developmentStatusBadges = map[string]Badge{
	"mature": {
		Image:  "https://img.shields.io/badge/maturity-Mature-brightgreen.png",
		Target: "https://odoo-community.org/page/development-status",
		Alt:    "Mature",
	},
	"production/stable": {
		Image:  "https://img.shields.io/badge/maturity-Production%2FStable-green.png",
		Target: "https://odoo-community.org/page/development-status",
		Alt:    "Production/Stable",
	},
	"beta": {
		Image:  "https://img.shields.io/badge/maturity-Beta-yellow.png",
		Target: "https://odoo-community.org/page/development-status",
		Alt:    "Beta",
	},
	"alpha": {
		Image:  "https://img.shields.io/badge/maturity-Alpha-red.png",
		Target: "https://odoo-community.org/page/development-status",
		Alt:    "Alpha",
	},
}

var licenseBadges = map[string]Badge{
	"AGPL-3": {
		Image:  "https://img.shields.io/badge/licence-AGPL--3-blue.png",
		Target: "http://www.gnu.org/licenses/agpl-3.0-standalone.html",
		Alt:    "License: AGPL-3",
	},
	"LGPL-3": {
		Image:  "https://img.shields.io/badge/licence-LGPL--3-blue.png",
		Target: "http://www.gnu.org/licenses/lgpl-3.0-standalone.html",
		Alt:    "License: LGPL-3",
	},
	"GPL-3": {
		Image:  "https://img.shields.io/badge/licence-GPL--3-blue.png",
		Target: "http://www.gnu.org/licenses/gpl-3.0-standalone.html",
		Alt:    "License: GPL-3",
	},
	"OPL-1": {
		Image:  "https://img.shields.io/badge/licence-OPL--1-blue.png",
		Target: "https://www.tldrlegal.com/license/open-public-license-v1-0-opl-1-0",
		Alt:    "License: OPL-1",
	},
	"OEEL-1": {
		Image:  "https://img.shields.io/badge/licence-OEEL--1-blue.png",
		Target: "https://www.tldrlegal.com/license/open-public-license-v1-0-opl-1-0",
		Alt:    "License: OEEL-1",
	},
}

var preCommitBadge = Badge{
	Image:  "https://img.shields.io/badge/pre_commit-passed-green",
	Target: "https://pre-commit.com/",
	Alt:    "Pre-Commit",
}

// badgesFor selects the badge row for an addon from its manifest. The
// development-status badge defaults to beta; unrecognized licenses get no
// license badge.
func badgesFor(m addon.Manifest) []Badge {
	var badges []Badge

	status := strings.ToLower(m.DevelopmentStatus)
	if status == "" {
		status = "beta"
	}
	if b, ok := developmentStatusBadges[status]; ok {
		badges = append(badges, b)
	}

	if b, ok := licenseBadges[m.License]; ok {
		badges = append(badges, b)
	}

	badges = append(badges, preCommitBadge)
	return badges
}
