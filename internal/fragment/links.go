package fragment

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	rstImageRe      = regexp.MustCompile(`(?m)^(\s*\.\.\s+(?:\|[^|]+\|\s+)?(?:figure|image)::\s+)(\S+)\s*$`)
	markdownImageRe = regexp.MustCompile(`(!\[[^\]]*\]\()([^)\s]+)(\))`)
)

// moduleBaseURL builds the raw-content base URL an image path is resolved
// against, e.g. https://raw.githubusercontent.com/OCA/server-tools/16.0/mod/.
func moduleBaseURL(meta LinkMeta) string {
	return fmt.Sprintf("https://raw.githubusercontent.com/%s/%s/%s/%s/",
		meta.Org, meta.Repo, meta.Branch, meta.Addon)
}

// rewriteRSTImages replaces relative targets of ".. image::" and
// ".. figure::" directives, including substitution definitions like
// ".. |icon| image::", with absolute raw-content URLs. Targets that are
// already absolute are left alone. A leading "../" is stripped first: that
// prefix exists so fragments render inside the readme subfolder, and has no
// meaning once the path is absolute.
func rewriteRSTImages(content string, meta LinkMeta) string {
	base := moduleBaseURL(meta)
	return rstImageRe.ReplaceAllStringFunc(content, func(line string) string {
		parts := rstImageRe.FindStringSubmatch(line)
		target := parts[2]
		if strings.HasPrefix(target, "http") {
			return line
		}
		return parts[1] + base + strings.ReplaceAll(target, "../", "")
	})
}

// rewriteMarkdownImages does the same for ![alt](path) references.
func rewriteMarkdownImages(content string, meta LinkMeta) string {
	base := moduleBaseURL(meta)
	return markdownImageRe.ReplaceAllStringFunc(content, func(ref string) string {
		parts := markdownImageRe.FindStringSubmatch(ref)
		target := parts[2]
		if strings.HasPrefix(target, "http") {
			return ref
		}
		return parts[1] + base + strings.ReplaceAll(target, "../", "") + parts[3]
	})
}
