package slideception

// Version is the release of the slideception module.
const Version = "0.1.0"
