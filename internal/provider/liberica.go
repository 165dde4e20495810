package provider

import "github.com/donaldgifford/javamatrix/internal/installer"

// Liberica normalizes BellSoft release API entries, e.g.
//
//	{"downloadUrl": "...", "filename": "bellsoft-jre17.0.1+12-windows-i586-full.zip",
//	 "featureVersion": 17, "interimVersion": 0, "updateVersion": 1, "bundleType": "jre-full"}
//
// The type comes from the explicit bundleType field rather than the filename.
var Liberica = &Profile{
	Distro:    installer.DistroLiberica,
	URLField:  "downloadUrl",
	NameField: "filename",
	TypeField: "bundleType",
	Version:   FieldsVersion("featureVersion", "interimVersion", "updateVersion"),

	Types: Table{
		Classify(installer.TypeJDK, EqualFold("jdk")),
		Classify(installer.TypeJRE, EqualFold("jre")),
		Classify(installer.TypeCracJDK, EqualFold("jdk-crac")),
		SkipWhen("lite and full bundles are not tracked", EqualFold("jdk-lite", "jdk-full", "jre-full")),
	},

	InstallerTypes: InstallerTypeTable,

	// Source bundles carry no platform marker, so they are only recognized
	// after every platform rule has failed.
	OS: Table{
		Classify(installer.OSLinuxMusl, AllOf(Contains("linux"), Contains("-musl"))),
		Classify(installer.OSLinux, Contains("-linux")),
		Classify(installer.OSMacOS, Contains("-macos")),
		Classify(installer.OSWindows, Contains("-win")),
		Classify(installer.OSSolaris, Contains("-solaris")),
		SkipWhen("source bundle", Contains("-src-full", "-src")),
	},

	Arches: Table{
		Classify(installer.ArchARM64, Contains("aarch64-", "aarch64.")),
		Classify(installer.ArchX64, Contains("amd64-", "amd64.", "x64")),
		Classify(installer.ArchX32, Contains("i586")),
		Classify(installer.ArchARMHF, Contains("arm32-vfp-hflt")),
		Classify(installer.ArchARMEL, Contains("aarch32sf.")),
		Classify(installer.ArchSPARC, Contains("sparcv9.")),
		Classify(installer.ArchPPC64, Contains("ppc64le")),
		Classify(installer.ArchRISCV64, Contains("riscv64")),
	},
}
