package headermap

// platformPackageNames pins well-known namespaces whose translated types
// ship with the j2native runtime. Types in these packages (and their
// subpackages) always use the package-derived layout so their include
// paths stay stable no matter which output style a project selects.
var platformPackageNames = []string{
	"android",
	"com.android.internal.util",
	"com.google.common",
	"com.google.protobuf",
	"dalvik",
	"java",
	"javax",
	"junit",
	"libcore",
	"org.apache.harmony",
	"org.hamcrest",
	"org.j2native",
	"org.json",
	"org.junit",
	"org.kxml2",
	"org.mockito",
	"org.w3c",
	"org.xml.sax",
	"org.xmlpull",
	"sun.misc",
}

var platformPackages = make(map[string]struct{}, len(platformPackageNames))

func init() {
	for _, name := range platformPackageNames {
		platformPackages[name] = struct{}{}
	}
}

// IsPlatformPackage reports whether pkg or any dotted ancestor of pkg is a
// platform package. Matching is exact per level: "java" covers
// "java.util.concurrent" but never "javafx".
func IsPlatformPackage(pkg string) bool {
	if pkg == "" {
		return false
	}

	for i := 0; i < len(pkg); i++ {
		if pkg[i] == '.' {
			if _, ok := platformPackages[pkg[:i]]; ok {
				return true
			}
		}
	}

	_, ok := platformPackages[pkg]

	return ok
}
