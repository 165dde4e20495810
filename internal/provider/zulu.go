package provider

import "github.com/donaldgifford/javamatrix/internal/installer"

// Zulu normalizes Azul metadata API packages, e.g.
//
//	{"download_url": "...", "name": "zulu17.34.19-ca-jdk17.0.3-macosx_aarch64.tar.gz", "java_version": [17, 0, 3]}
var Zulu = &Profile{
	Distro:    installer.DistroZulu,
	URLField:  "download_url",
	NameField: "name",
	Version:   ArrayVersion("java_version"),

	// Bundle markers are checked before the plain -ca-jdk/-ca-jre markers.
	Types: Table{
		Classify(installer.TypeFXJDK, Contains("-ca-fx-jdk")),
		Classify(installer.TypeFXJRE, Contains("-ca-fx-jre")),
		Classify(installer.TypeCracJDK, Contains("-ca-crac-jdk")),
		Classify(installer.TypeCracJRE, Contains("-ca-crac-jre")),
		Classify(installer.TypeJDK, Contains("-ca-hl-jdk")),
		Classify(installer.TypeJRE, Contains("-ca-hl-jre")),
		Classify(installer.TypeJDK, Contains("-ca-jdk")),
		Classify(installer.TypeJRE, Contains("-ca-jre")),
		SkipWhen("neither a jdk nor a jre bundle", Not(Contains("jdk", "jre"))),
	},

	InstallerTypes: InstallerTypeTable,

	OS: Table{
		Classify(installer.OSLinuxMusl, Contains("-linux_musl")),
		Classify(installer.OSLinux, Contains("-linux")),
		Classify(installer.OSMacOS, Contains("-macosx")),
		Classify(installer.OSWindows, Contains("-win")),
		Classify(installer.OSSolaris, Contains("-solaris")),
	},

	Arches: Table{
		Classify(installer.ArchARM64, Contains("aarch64.", "arm64.")),
		Classify(installer.ArchX64, Contains("x86_64.", "x64.", "amd64.", "x86lx64.")),
		Classify(installer.ArchX32, Contains("i686.", "i386.")),
		Classify(installer.ArchARMHF, Contains("aarch32hf.")),
		Classify(installer.ArchARMEL, Contains("aarch32sf.")),
		Classify(installer.ArchSPARC, Contains("sparcv9.")),
		Classify(installer.ArchPPC64, Contains("ppc64.")),
	},
}
