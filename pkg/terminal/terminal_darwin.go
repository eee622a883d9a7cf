package terminal

// FIONREAD from <sys/filio.h>
const fionread = 0x4004667f
