package catalog

import "github.com/donaldgifford/javamatrix/internal/installer"

// pinnedComponent is used as minor and patch so pinned records outrank any
// real release of the same major.
const pinnedComponent = 999999

const (
	nitroURL = "https://github.com/fizzed/nitro/releases/download/builds/fizzed21.35-jdk21.0.1-linux_riscv64.tar.gz"

	// Later Zulu 11 hard-float builds do not start on armhf boards.
	zuluARMHFURL = "https://cdn.azul.com/zulu-embedded/bin/zulu11.64.19-ca-jdk11.0.19-linux_aarch32hf.tar.gz"
)

var nitroMajors = []int{21, 19, 17, 11, 8}

// Manual returns the built-in records appended after every provider's output.
func Manual() []installer.Installer {
	out := make([]installer.Installer, 0, len(nitroMajors)+1)

	for _, major := range nitroMajors {
		out = append(out, installer.MustNew(installer.Params{
			Distro:        installer.DistroNitro,
			DownloadURL:   nitroURL,
			Name:          "fizzed21.35-jdk21.0.1-linux_riscv64.tar.gz",
			Version:       installer.Version{Major: major, Minor: pinnedComponent, Patch: pinnedComponent},
			Type:          installer.TypeJDK,
			InstallerType: installer.InstallerTarGz,
			OS:            installer.OSLinux,
			Arch:          installer.ArchRISCV64,
		}))
	}

	out = append(out, installer.MustNew(installer.Params{
		Distro:        installer.DistroZulu,
		DownloadURL:   zuluARMHFURL,
		Name:          "zulu11.64.19-ca-jdk11.0.19-linux_aarch32hf.tar.gz",
		Version:       installer.Version{Major: 11, Minor: pinnedComponent, Patch: pinnedComponent},
		Type:          installer.TypeJDK,
		InstallerType: installer.InstallerTarGz,
		OS:            installer.OSLinux,
		Arch:          installer.ArchARMHF,
	}))

	return out
}
