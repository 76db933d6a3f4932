// Package assets provides the CSS styles and the HTML shell used to render
// notebook reports.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in styles and the report template (go:embed)
//	    ├── FilesystemLoader  - custom directory on disk
//	    └── AssetResolver     - custom first, embedded as fallback
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css
//	└── templates/
//	    └── report.html   # html/template with .Title .CSS .Items .Footer
//
// # Security
//
// Asset names cannot contain separators or dots. FilesystemLoader resolves
// symlinks and refuses paths that leave basePath.
package assets
