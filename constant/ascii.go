package constant

// AsciiArtLogo is the application's banner shown in the root help.
const AsciiArtLogo = `
  ____  _  _  ____   ___  ____  ___
 / __ \( \/ )(  _ \ / __)( ___)/ __)
( (__) ))  (  )   /( (__  )__)( (_-.
 \____/(_/\_)(_)\_) \___)(__)  \___/`
