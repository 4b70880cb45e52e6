// Package api provides the HTTP API for the application
package api

import (
	"langid/internal/platform/config"
	"langid/internal/platform/logger"
	phttp "langid/internal/platform/net/http"
	"langid/internal/platform/store"

	"langid/internal/modkit"
	"langid/internal/modkit/httpkit"
	"langid/internal/modkit/module"
	"langid/internal/modkit/swaggerkit"

	classifymod "langid/internal/services/api/classify/module"
	metamod "langid/internal/services/api/meta/module"
	samplesmod "langid/internal/services/api/samples/module"
	statsmod "langid/internal/services/api/stats/module"

	// Worker modules own the detector and recorder ports
	workerclassifier "langid/internal/services/classifier/module"
	workersamples "langid/internal/services/samples/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	// Construct the WORKER classifier module first and extract its Detector port
	workerClassifier := workerclassifier.New(deps)
	det := module.MustPortsOf[workerclassifier.Ports](workerClassifier).Detector

	mods := []module.Module{
		metamod.New(deps),
		workerClassifier, // include worker so its ports are registered
	}

	// Inject the Detector into the API classify module; the recorder joins
	// below when the postgres seam is open
	classifyPorts := classifymod.Ports{Detector: det}

	if deps.PG != nil {
		workerSamples := workersamples.New(deps)
		sp := module.MustPortsOf[workersamples.Ports](workerSamples)
		classifyPorts.Recorder = sp.Recorder

		mods = append(mods,
			workerSamples,
			samplesmod.New(deps, modkit.WithPorts(samplesmod.Ports{Reader: sp.Reader})),
			statsmod.New(deps),
		)
	}

	mods = append(mods, classifymod.New(deps, modkit.WithPorts(classifyPorts)))

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
