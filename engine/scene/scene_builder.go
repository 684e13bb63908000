package scene

// SceneBuilderOption is a functional option for configuring a scene at construction.
type SceneBuilderOption func(*scene)

// WithFrameCount sets the number of frame resources in the ring, which is how
// many frames the CPU may produce ahead of the GPU. Values below 1 are ignored.
//
// Parameters:
//   - frameCount: the ring size (default 3)
//
// Returns:
//   - SceneBuilderOption: the option to apply
func WithFrameCount(frameCount int) SceneBuilderOption {
	return func(s *scene) {
		if frameCount >= 1 {
			s.frameCount = frameCount
		}
	}
}

// WithComputeWorkers sets the number of persistent workers used for the
// parallel constant staging phase of Update. Values below 1 are ignored.
//
// Parameters:
//   - workers: the worker count (default NumCPU-1, minimum 1)
//
// Returns:
//   - SceneBuilderOption: the option to apply
func WithComputeWorkers(workers int) SceneBuilderOption {
	return func(s *scene) {
		if workers >= 1 {
			s.computeWorkers = workers
		}
	}
}
