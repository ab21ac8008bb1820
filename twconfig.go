// Package twconfig loads and checks the declaration file of a CSS
// utility-class framework.
//
// A declaration names the source files the framework scans, the colours it
// adds to the theme and the plugins it activates:
//
//	content:
//	  - "./src/**/*.{html,js,svelte,ts}"
//	theme:
//	  extend:
//	    colors:
//	      green:
//	        600: "#16a34a"
//	plugins:
//	  - daisyui
//
// # Loading
//
//	doc, err := twconfig.Load() // tailwind.config.yaml in the working directory
//	if errors.Is(err, twconfig.ErrMalformedConfiguration) {
//		// wrong shape or leaf types
//	}
//
// Values are returned exactly as declared. Nothing is defaulted or merged.
//
// # Checking
//
//	result, err := twconfig.CheckFile("tailwind.config.yaml", twconfig.CheckOptions{
//		ResolveContent: true,
//	})
//
// # CLI Tool
//
//	go install github.com/yacobolo/twconfig/cmd/twconfig@latest
package twconfig
