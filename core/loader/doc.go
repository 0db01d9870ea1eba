// Package loader mounts features on the HTTP application.
//
// A Feature names itself, says whether it is enabled and registers its routes in Load.
// The Manager keeps features in registration order; LoadAll loads the enabled ones and
// reports which were mounted.
//
//	mgr := loader.NewManager()
//	mgr.Register(duplicates.NewFeature(catalogs, accts, log))
//	loaded, err := mgr.LoadAll(app)
package loader
