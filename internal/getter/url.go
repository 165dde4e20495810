package getter

import (
	"strconv"
	"strings"
)

// VersionPlaceholder is replaced by the Java major version in endpoint patterns.
const VersionPlaceholder = "{{version}}"

// EndpointURL renders a provider endpoint pattern for one major version.
//
//	EndpointURL("https://api.azul.com/metadata/v1/zulu/packages?java_version={{version}}", 17)
//	→ "https://api.azul.com/metadata/v1/zulu/packages?java_version=17"
func EndpointURL(pattern string, version int) string {
	return strings.ReplaceAll(pattern, VersionPlaceholder, strconv.Itoa(version))
}
