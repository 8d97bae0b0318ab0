package libfunc

// ID identifies a C library function the attribute tables know about.
// The zero value is Invalid.
type ID uint16

const (
	Invalid ID = iota
	Abs
	Access
	Acos
	Acosf
	Acosh
	Acoshf
	Acoshl
	Acosl
	AlignedAlloc
	Asin
	Asinf
	Asinh
	Asinhf
	Asinhl
	Asinl
	Atan
	Atan2
	Atan2f
	Atan2l
	Atanf
	Atanh
	Atanhf
	Atanhl
	Atanl
	Atof
	Atoi
	Atol
	Atoll
	Bcmp
	Bcopy
	Bzero
	Calloc
	Cbrt
	Cbrtf
	Cbrtl
	Ceil
	Ceilf
	Ceill
	Chmod
	Chown
	Clearerr
	Closedir
	Copysign
	Copysignf
	Copysignl
	Cos
	Cosf
	Cosh
	Coshf
	Coshl
	Cosl
	Cospi
	Cospif
	Ctermid
	DunderIsoc99Scanf
	DunderIsoc99Sscanf
	DunderStrdup
	DunderStrndup
	DunderStrtokR
	Exp
	Exp2
	Exp2f
	Exp2l
	Expf
	Expl
	Expm1
	Expm1f
	Expm1l
	Fabs
	Fabsf
	Fabsl
	Fclose
	Fdopen
	Feof
	Ferror
	Fflush
	Ffs
	Ffsl
	Ffsll
	Fgetc
	FgetcUnlocked
	Fgetpos
	Fgets
	FgetsUnlocked
	Fileno
	Flockfile
	Floor
	Floorf
	Floorl
	Fls
	Flsl
	Flsll
	Fmax
	Fmaxf
	Fmaxl
	Fmin
	Fminf
	Fminl
	Fmod
	Fmodf
	Fmodl
	Fopen
	Fopen64
	Fprintf
	Fputc
	FputcUnlocked
	Fputs
	FputsUnlocked
	Fread
	FreadUnlocked
	Free
	Frexp
	Frexpf
	Frexpl
	Fscanf
	Fseek
	Fseeko
	Fseeko64
	Fsetpos
	Fstat
	Fstat64
	Fstatvfs
	Fstatvfs64
	Ftell
	Ftello
	Ftello64
	Ftrylockfile
	Funlockfile
	Fwrite
	FwriteUnlocked
	Getc
	GetcUnlocked
	Getchar
	GetcharUnlocked
	Getenv
	Getitimer
	GetloginR
	Getpwnam
	Gets
	Gettimeofday
	Htonl
	Htons
	Isascii
	Isdigit
	Labs
	Lchown
	Ldexp
	Ldexpf
	Ldexpl
	Llabs
	Log
	Log10
	Log10f
	Log10l
	Log1p
	Log1pf
	Log1pl
	Log2
	Log2f
	Log2l
	Logb
	Logbf
	Logbl
	Logf
	Logl
	Lstat
	Lstat64
	Malloc
	Memalign
	Memccpy
	Memchr
	Memcmp
	Memcpy
	MemcpyChk
	Memmove
	Mempcpy
	Memrchr
	Memset
	MemsetChk
	MemsetPattern16
	MemsetPattern4
	MemsetPattern8
	Mkdir
	Mktime
	Modf
	Modff
	Modfl
	Nearbyint
	Nearbyintf
	Nearbyintl
	Ntohl
	Ntohs
	NvvmReflect
	Open
	Open64
	Opendir
	Pclose
	Perror
	Popen
	Pow
	Powf
	Powl
	Pread
	Printf
	Putc
	PutcUnlocked
	Putchar
	PutcharUnlocked
	Puts
	Pwrite
	Qsort
	Read
	Readlink
	Realloc
	Reallocf
	Realpath
	Remove
	Rename
	Rewind
	Rint
	Rintf
	Rintl
	Rmdir
	Round
	Roundf
	Roundl
	Scanf
	Setbuf
	Setitimer
	Setvbuf
	Sin
	SincospifStret
	Sinf
	Sinh
	Sinhf
	Sinhl
	Sinl
	Sinpi
	Sinpif
	Snprintf
	Sprintf
	Sqrt
	Sqrtf
	Sqrtl
	Sscanf
	Stat
	Stat64
	Statvfs
	Statvfs64
	Stpcpy
	Stpncpy
	Strcasecmp
	Strcat
	Strchr
	Strcmp
	Strcoll
	Strcpy
	Strcspn
	Strdup
	Strlcat
	Strlcpy
	Strlen
	Strncasecmp
	Strncat
	Strncmp
	Strncpy
	Strndup
	Strnlen
	Strpbrk
	Strrchr
	Strspn
	Strstr
	Strtod
	Strtof
	Strtok
	StrtokR
	Strtol
	Strtold
	Strtoll
	Strtoul
	Strtoull
	Strxfrm
	System
	Tan
	Tanf
	Tanh
	Tanhf
	Tanhl
	Tanl
	Times
	Tmpfile
	Tmpfile64
	Toascii
	Trunc
	Truncf
	Truncl
	Uname
	UnderIOGetc
	UnderIOPutc
	Ungetc
	Unlink
	Unsetenv
	Utime
	Utimes
	Valloc
	VecCalloc
	VecFree
	VecMalloc
	VecRealloc
	Vfprintf
	Vfscanf
	Vprintf
	Vscanf
	Vsnprintf
	Vsprintf
	Vsscanf
	Wcslen
	Write

	idEnd
)

// NumIDs is the number of valid identifiers.
const NumIDs = int(idEnd) - 1

var descs = [idEnd]desc{
	Abs:                {"abs", "int(int)", availAny},
	Access:             {"access", "int(ptr,int)", availPOSIX},
	Acos:               {"acos", "double(double)", availAny},
	Acosf:              {"acosf", "float(float)", availAny},
	Acosh:              {"acosh", "double(double)", availAny},
	Acoshf:             {"acoshf", "float(float)", availAny},
	Acoshl:             {"acoshl", "ldouble(ldouble)", availAny},
	Acosl:              {"acosl", "ldouble(ldouble)", availAny},
	AlignedAlloc:       {"aligned_alloc", "ptr(size,size)", availLibc},
	Asin:               {"asin", "double(double)", availAny},
	Asinf:              {"asinf", "float(float)", availAny},
	Asinh:              {"asinh", "double(double)", availAny},
	Asinhf:             {"asinhf", "float(float)", availAny},
	Asinhl:             {"asinhl", "ldouble(ldouble)", availAny},
	Asinl:              {"asinl", "ldouble(ldouble)", availAny},
	Atan:               {"atan", "double(double)", availAny},
	Atan2:              {"atan2", "double(double,double)", availAny},
	Atan2f:             {"atan2f", "float(float,float)", availAny},
	Atan2l:             {"atan2l", "ldouble(ldouble,ldouble)", availAny},
	Atanf:              {"atanf", "float(float)", availAny},
	Atanh:              {"atanh", "double(double)", availAny},
	Atanhf:             {"atanhf", "float(float)", availAny},
	Atanhl:             {"atanhl", "ldouble(ldouble)", availAny},
	Atanl:              {"atanl", "ldouble(ldouble)", availAny},
	Atof:               {"atof", "double(ptr)", availLibc},
	Atoi:               {"atoi", "int(ptr)", availLibc},
	Atol:               {"atol", "long(ptr)", availLibc},
	Atoll:              {"atoll", "llong(ptr)", availLibc},
	Bcmp:               {"bcmp", "int(ptr,ptr,size)", availPOSIX},
	Bcopy:              {"bcopy", "void(ptr,ptr,size)", availPOSIX},
	Bzero:              {"bzero", "void(ptr,size)", availPOSIX},
	Calloc:             {"calloc", "ptr(size,size)", availAny},
	Cbrt:               {"cbrt", "double(double)", availAny},
	Cbrtf:              {"cbrtf", "float(float)", availAny},
	Cbrtl:              {"cbrtl", "ldouble(ldouble)", availAny},
	Ceil:               {"ceil", "double(double)", availAny},
	Ceilf:              {"ceilf", "float(float)", availAny},
	Ceill:              {"ceill", "ldouble(ldouble)", availAny},
	Chmod:              {"chmod", "int(ptr,int)", availPOSIX},
	Chown:              {"chown", "int(ptr,int,int)", availPOSIX},
	Clearerr:           {"clearerr", "void(ptr)", availLibc},
	Closedir:           {"closedir", "int(ptr)", availPOSIX},
	Copysign:           {"copysign", "double(double,double)", availAny},
	Copysignf:          {"copysignf", "float(float,float)", availAny},
	Copysignl:          {"copysignl", "ldouble(ldouble,ldouble)", availAny},
	Cos:                {"cos", "double(double)", availAny},
	Cosf:               {"cosf", "float(float)", availAny},
	Cosh:               {"cosh", "double(double)", availAny},
	Coshf:              {"coshf", "float(float)", availAny},
	Coshl:              {"coshl", "ldouble(ldouble)", availAny},
	Cosl:               {"cosl", "ldouble(ldouble)", availAny},
	Cospi:              {"__cospi", "double(double)", availDarwin},
	Cospif:             {"__cospif", "float(float)", availDarwin},
	Ctermid:            {"ctermid", "ptr(ptr)", availPOSIX},
	DunderIsoc99Scanf:  {"__isoc99_scanf", "int(ptr,...)", availLinux},
	DunderIsoc99Sscanf: {"__isoc99_sscanf", "int(ptr,ptr,...)", availLinux},
	DunderStrdup:       {"__strdup", "ptr(ptr)", availLinux},
	DunderStrndup:      {"__strndup", "ptr(ptr,size)", availLinux},
	DunderStrtokR:      {"__strtok_r", "ptr(ptr,ptr,ptr)", availLinux},
	Exp:                {"exp", "double(double)", availAny},
	Exp2:               {"exp2", "double(double)", availAny},
	Exp2f:              {"exp2f", "float(float)", availAny},
	Exp2l:              {"exp2l", "ldouble(ldouble)", availAny},
	Expf:               {"expf", "float(float)", availAny},
	Expl:               {"expl", "ldouble(ldouble)", availAny},
	Expm1:              {"expm1", "double(double)", availAny},
	Expm1f:             {"expm1f", "float(float)", availAny},
	Expm1l:             {"expm1l", "ldouble(ldouble)", availAny},
	Fabs:               {"fabs", "double(double)", availAny},
	Fabsf:              {"fabsf", "float(float)", availAny},
	Fabsl:              {"fabsl", "ldouble(ldouble)", availAny},
	Fclose:             {"fclose", "int(ptr)", availLibc},
	Fdopen:             {"fdopen", "ptr(int,ptr)", availPOSIX},
	Feof:               {"feof", "int(ptr)", availLibc},
	Ferror:             {"ferror", "int(ptr)", availLibc},
	Fflush:             {"fflush", "int(ptr)", availLibc},
	Ffs:                {"ffs", "int(int)", availPOSIX},
	Ffsl:               {"ffsl", "int(long)", availPOSIX},
	Ffsll:              {"ffsll", "int(llong)", availPOSIX},
	Fgetc:              {"fgetc", "int(ptr)", availLibc},
	FgetcUnlocked:      {"fgetc_unlocked", "int(ptr)", availLinux},
	Fgetpos:            {"fgetpos", "int(ptr,ptr)", availLibc},
	Fgets:              {"fgets", "ptr(ptr,int,ptr)", availLibc},
	FgetsUnlocked:      {"fgets_unlocked", "ptr(ptr,int,ptr)", availLinux},
	Fileno:             {"fileno", "int(ptr)", availPOSIX},
	Flockfile:          {"flockfile", "void(ptr)", availPOSIX},
	Floor:              {"floor", "double(double)", availAny},
	Floorf:             {"floorf", "float(float)", availAny},
	Floorl:             {"floorl", "ldouble(ldouble)", availAny},
	Fls:                {"fls", "int(int)", availBSD},
	Flsl:               {"flsl", "int(long)", availBSD},
	Flsll:              {"flsll", "int(llong)", availBSD},
	Fmax:               {"fmax", "double(double,double)", availAny},
	Fmaxf:              {"fmaxf", "float(float,float)", availAny},
	Fmaxl:              {"fmaxl", "ldouble(ldouble,ldouble)", availAny},
	Fmin:               {"fmin", "double(double,double)", availAny},
	Fminf:              {"fminf", "float(float,float)", availAny},
	Fminl:              {"fminl", "ldouble(ldouble,ldouble)", availAny},
	Fmod:               {"fmod", "double(double,double)", availAny},
	Fmodf:              {"fmodf", "float(float,float)", availAny},
	Fmodl:              {"fmodl", "ldouble(ldouble,ldouble)", availAny},
	Fopen:              {"fopen", "ptr(ptr,ptr)", availLibc},
	Fopen64:            {"fopen64", "ptr(ptr,ptr)", availLinux},
	Fprintf:            {"fprintf", "int(ptr,ptr,...)", availLibc},
	Fputc:              {"fputc", "int(int,ptr)", availLibc},
	FputcUnlocked:      {"fputc_unlocked", "int(int,ptr)", availLinux},
	Fputs:              {"fputs", "int(ptr,ptr)", availLibc},
	FputsUnlocked:      {"fputs_unlocked", "int(ptr,ptr)", availLinux},
	Fread:              {"fread", "size(ptr,size,size,ptr)", availLibc},
	FreadUnlocked:      {"fread_unlocked", "size(ptr,size,size,ptr)", availLinux},
	Free:               {"free", "void(ptr)", availAny},
	Frexp:              {"frexp", "double(double,ptr)", availAny},
	Frexpf:             {"frexpf", "float(float,ptr)", availAny},
	Frexpl:             {"frexpl", "ldouble(ldouble,ptr)", availAny},
	Fscanf:             {"fscanf", "int(ptr,ptr,...)", availLibc},
	Fseek:              {"fseek", "int(ptr,long,int)", availLibc},
	Fseeko:             {"fseeko", "int(ptr,long,int)", availPOSIX},
	Fseeko64:           {"fseeko64", "int(ptr,llong,int)", availLinux},
	Fsetpos:            {"fsetpos", "int(ptr,ptr)", availLibc},
	Fstat:              {"fstat", "int(int,ptr)", availPOSIX},
	Fstat64:            {"fstat64", "int(int,ptr)", availLinux},
	Fstatvfs:           {"fstatvfs", "int(int,ptr)", availPOSIX},
	Fstatvfs64:         {"fstatvfs64", "int(int,ptr)", availLinux},
	Ftell:              {"ftell", "long(ptr)", availLibc},
	Ftello:             {"ftello", "long(ptr)", availPOSIX},
	Ftello64:           {"ftello64", "llong(ptr)", availLinux},
	Ftrylockfile:       {"ftrylockfile", "int(ptr)", availPOSIX},
	Funlockfile:        {"funlockfile", "void(ptr)", availPOSIX},
	Fwrite:             {"fwrite", "size(ptr,size,size,ptr)", availLibc},
	FwriteUnlocked:     {"fwrite_unlocked", "size(ptr,size,size,ptr)", availLinux},
	Getc:               {"getc", "int(ptr)", availLibc},
	GetcUnlocked:       {"getc_unlocked", "int(ptr)", availPOSIX},
	Getchar:            {"getchar", "int()", availLibc},
	GetcharUnlocked:    {"getchar_unlocked", "int()", availPOSIX},
	Getenv:             {"getenv", "ptr(ptr)", availLibc},
	Getitimer:          {"getitimer", "int(int,ptr)", availPOSIX},
	GetloginR:          {"getlogin_r", "int(ptr,size)", availPOSIX},
	Getpwnam:           {"getpwnam", "ptr(ptr)", availPOSIX},
	Gets:               {"gets", "ptr(ptr)", availLibc},
	Gettimeofday:       {"gettimeofday", "int(ptr,ptr)", availPOSIX},
	Htonl:              {"htonl", "i32(i32)", availLibc},
	Htons:              {"htons", "i16(i16)", availLibc},
	Isascii:            {"isascii", "int(int)", availPOSIX},
	Isdigit:            {"isdigit", "int(int)", availLibc},
	Labs:               {"labs", "long(long)", availAny},
	Lchown:             {"lchown", "int(ptr,int,int)", availPOSIX},
	Ldexp:              {"ldexp", "double(double,int)", availAny},
	Ldexpf:             {"ldexpf", "float(float,int)", availAny},
	Ldexpl:             {"ldexpl", "ldouble(ldouble,int)", availAny},
	Llabs:              {"llabs", "llong(llong)", availAny},
	Log:                {"log", "double(double)", availAny},
	Log10:              {"log10", "double(double)", availAny},
	Log10f:             {"log10f", "float(float)", availAny},
	Log10l:             {"log10l", "ldouble(ldouble)", availAny},
	Log1p:              {"log1p", "double(double)", availAny},
	Log1pf:             {"log1pf", "float(float)", availAny},
	Log1pl:             {"log1pl", "ldouble(ldouble)", availAny},
	Log2:               {"log2", "double(double)", availAny},
	Log2f:              {"log2f", "float(float)", availAny},
	Log2l:              {"log2l", "ldouble(ldouble)", availAny},
	Logb:               {"logb", "double(double)", availAny},
	Logbf:              {"logbf", "float(float)", availAny},
	Logbl:              {"logbl", "ldouble(ldouble)", availAny},
	Logf:               {"logf", "float(float)", availAny},
	Logl:               {"logl", "ldouble(ldouble)", availAny},
	Lstat:              {"lstat", "int(ptr,ptr)", availPOSIX},
	Lstat64:            {"lstat64", "int(ptr,ptr)", availLinux},
	Malloc:             {"malloc", "ptr(size)", availAny},
	Memalign:           {"memalign", "ptr(size,size)", availPOSIX},
	Memccpy:            {"memccpy", "ptr(ptr,ptr,int,size)", availPOSIX},
	Memchr:             {"memchr", "ptr(ptr,int,size)", availLibc},
	Memcmp:             {"memcmp", "int(ptr,ptr,size)", availLibc},
	Memcpy:             {"memcpy", "ptr(ptr,ptr,size)", availAny},
	MemcpyChk:          {"__memcpy_chk", "ptr(ptr,ptr,size,size)", availLibc},
	Memmove:            {"memmove", "ptr(ptr,ptr,size)", availAny},
	Mempcpy:            {"mempcpy", "ptr(ptr,ptr,size)", availLinux},
	Memrchr:            {"memrchr", "ptr(ptr,int,size)", availLinux},
	Memset:             {"memset", "ptr(ptr,int,size)", availAny},
	MemsetChk:          {"__memset_chk", "ptr(ptr,int,size,size)", availLibc},
	MemsetPattern16:    {"memset_pattern16", "void(ptr,ptr,size)", availDarwin},
	MemsetPattern4:     {"memset_pattern4", "void(ptr,ptr,size)", availDarwin},
	MemsetPattern8:     {"memset_pattern8", "void(ptr,ptr,size)", availDarwin},
	Mkdir:              {"mkdir", "int(ptr,int)", availPOSIX},
	Mktime:             {"mktime", "long(ptr)", availLibc},
	Modf:               {"modf", "double(double,ptr)", availAny},
	Modff:              {"modff", "float(float,ptr)", availAny},
	Modfl:              {"modfl", "ldouble(ldouble,ptr)", availAny},
	Nearbyint:          {"nearbyint", "double(double)", availAny},
	Nearbyintf:         {"nearbyintf", "float(float)", availAny},
	Nearbyintl:         {"nearbyintl", "ldouble(ldouble)", availAny},
	Ntohl:              {"ntohl", "i32(i32)", availLibc},
	Ntohs:              {"ntohs", "i16(i16)", availLibc},
	NvvmReflect:        {"__nvvm_reflect", "int(ptr)", availCUDA},
	Open:               {"open", "int(ptr,int,...)", availPOSIX},
	Open64:             {"open64", "int(ptr,int,...)", availLinux},
	Opendir:            {"opendir", "ptr(ptr)", availPOSIX},
	Pclose:             {"pclose", "int(ptr)", availPOSIX},
	Perror:             {"perror", "void(ptr)", availLibc},
	Popen:              {"popen", "ptr(ptr,ptr)", availPOSIX},
	Pow:                {"pow", "double(double,double)", availAny},
	Powf:               {"powf", "float(float,float)", availAny},
	Powl:               {"powl", "ldouble(ldouble,ldouble)", availAny},
	Pread:              {"pread", "size(int,ptr,size,long)", availPOSIX},
	Printf:             {"printf", "int(ptr,...)", availLibc},
	Putc:               {"putc", "int(int,ptr)", availLibc},
	PutcUnlocked:       {"putc_unlocked", "int(int,ptr)", availPOSIX},
	Putchar:            {"putchar", "int(int)", availLibc},
	PutcharUnlocked:    {"putchar_unlocked", "int(int)", availPOSIX},
	Puts:               {"puts", "int(ptr)", availLibc},
	Pwrite:             {"pwrite", "size(int,ptr,size,long)", availPOSIX},
	Qsort:              {"qsort", "void(ptr,size,size,ptr)", availLibc},
	Read:               {"read", "size(int,ptr,size)", availPOSIX},
	Readlink:           {"readlink", "size(ptr,ptr,size)", availPOSIX},
	Realloc:            {"realloc", "ptr(ptr,size)", availAny},
	Reallocf:           {"reallocf", "ptr(ptr,size)", availBSD},
	Realpath:           {"realpath", "ptr(ptr,ptr)", availPOSIX},
	Remove:             {"remove", "int(ptr)", availLibc},
	Rename:             {"rename", "int(ptr,ptr)", availLibc},
	Rewind:             {"rewind", "void(ptr)", availLibc},
	Rint:               {"rint", "double(double)", availAny},
	Rintf:              {"rintf", "float(float)", availAny},
	Rintl:              {"rintl", "ldouble(ldouble)", availAny},
	Rmdir:              {"rmdir", "int(ptr)", availPOSIX},
	Round:              {"round", "double(double)", availAny},
	Roundf:             {"roundf", "float(float)", availAny},
	Roundl:             {"roundl", "ldouble(ldouble)", availAny},
	Scanf:              {"scanf", "int(ptr,...)", availLibc},
	Setbuf:             {"setbuf", "void(ptr,ptr)", availLibc},
	Setitimer:          {"setitimer", "int(int,ptr,ptr)", availPOSIX},
	Setvbuf:            {"setvbuf", "int(ptr,ptr,int,size)", availLibc},
	Sin:                {"sin", "double(double)", availAny},
	SincospifStret:     {"__sincospif_stret", "double(float)", availDarwin},
	Sinf:               {"sinf", "float(float)", availAny},
	Sinh:               {"sinh", "double(double)", availAny},
	Sinhf:              {"sinhf", "float(float)", availAny},
	Sinhl:              {"sinhl", "ldouble(ldouble)", availAny},
	Sinl:               {"sinl", "ldouble(ldouble)", availAny},
	Sinpi:              {"__sinpi", "double(double)", availDarwin},
	Sinpif:             {"__sinpif", "float(float)", availDarwin},
	Snprintf:           {"snprintf", "int(ptr,size,ptr,...)", availLibc},
	Sprintf:            {"sprintf", "int(ptr,ptr,...)", availLibc},
	Sqrt:               {"sqrt", "double(double)", availAny},
	Sqrtf:              {"sqrtf", "float(float)", availAny},
	Sqrtl:              {"sqrtl", "ldouble(ldouble)", availAny},
	Sscanf:             {"sscanf", "int(ptr,ptr,...)", availLibc},
	Stat:               {"stat", "int(ptr,ptr)", availPOSIX},
	Stat64:             {"stat64", "int(ptr,ptr)", availLinux},
	Statvfs:            {"statvfs", "int(ptr,ptr)", availPOSIX},
	Statvfs64:          {"statvfs64", "int(ptr,ptr)", availLinux},
	Stpcpy:             {"stpcpy", "ptr(ptr,ptr)", availPOSIX},
	Stpncpy:            {"stpncpy", "ptr(ptr,ptr,size)", availPOSIX},
	Strcasecmp:         {"strcasecmp", "int(ptr,ptr)", availPOSIX},
	Strcat:             {"strcat", "ptr(ptr,ptr)", availLibc},
	Strchr:             {"strchr", "ptr(ptr,int)", availLibc},
	Strcmp:             {"strcmp", "int(ptr,ptr)", availLibc},
	Strcoll:            {"strcoll", "int(ptr,ptr)", availLibc},
	Strcpy:             {"strcpy", "ptr(ptr,ptr)", availLibc},
	Strcspn:            {"strcspn", "size(ptr,ptr)", availLibc},
	Strdup:             {"strdup", "ptr(ptr)", availLibc},
	Strlcat:            {"strlcat", "size(ptr,ptr,size)", availBSD},
	Strlcpy:            {"strlcpy", "size(ptr,ptr,size)", availBSD},
	Strlen:             {"strlen", "size(ptr)", availAny},
	Strncasecmp:        {"strncasecmp", "int(ptr,ptr,size)", availPOSIX},
	Strncat:            {"strncat", "ptr(ptr,ptr,size)", availLibc},
	Strncmp:            {"strncmp", "int(ptr,ptr,size)", availLibc},
	Strncpy:            {"strncpy", "ptr(ptr,ptr,size)", availLibc},
	Strndup:            {"strndup", "ptr(ptr,size)", availPOSIX},
	Strnlen:            {"strnlen", "size(ptr,size)", availPOSIX},
	Strpbrk:            {"strpbrk", "ptr(ptr,ptr)", availLibc},
	Strrchr:            {"strrchr", "ptr(ptr,int)", availLibc},
	Strspn:             {"strspn", "size(ptr,ptr)", availLibc},
	Strstr:             {"strstr", "ptr(ptr,ptr)", availLibc},
	Strtod:             {"strtod", "double(ptr,ptr)", availLibc},
	Strtof:             {"strtof", "float(ptr,ptr)", availLibc},
	Strtok:             {"strtok", "ptr(ptr,ptr)", availLibc},
	StrtokR:            {"strtok_r", "ptr(ptr,ptr,ptr)", availPOSIX},
	Strtol:             {"strtol", "long(ptr,ptr,int)", availLibc},
	Strtold:            {"strtold", "ldouble(ptr,ptr)", availLibc},
	Strtoll:            {"strtoll", "llong(ptr,ptr,int)", availLibc},
	Strtoul:            {"strtoul", "long(ptr,ptr,int)", availLibc},
	Strtoull:           {"strtoull", "llong(ptr,ptr,int)", availLibc},
	Strxfrm:            {"strxfrm", "size(ptr,ptr,size)", availLibc},
	System:             {"system", "int(ptr)", availLibc},
	Tan:                {"tan", "double(double)", availAny},
	Tanf:               {"tanf", "float(float)", availAny},
	Tanh:               {"tanh", "double(double)", availAny},
	Tanhf:              {"tanhf", "float(float)", availAny},
	Tanhl:              {"tanhl", "ldouble(ldouble)", availAny},
	Tanl:               {"tanl", "ldouble(ldouble)", availAny},
	Times:              {"times", "long(ptr)", availPOSIX},
	Tmpfile:            {"tmpfile", "ptr()", availLibc},
	Tmpfile64:          {"tmpfile64", "ptr()", availLinux},
	Toascii:            {"toascii", "int(int)", availPOSIX},
	Trunc:              {"trunc", "double(double)", availAny},
	Truncf:             {"truncf", "float(float)", availAny},
	Truncl:             {"truncl", "ldouble(ldouble)", availAny},
	Uname:              {"uname", "int(ptr)", availPOSIX},
	UnderIOGetc:        {"_IO_getc", "int(ptr)", availLinux},
	UnderIOPutc:        {"_IO_putc", "int(int,ptr)", availLinux},
	Ungetc:             {"ungetc", "int(int,ptr)", availLibc},
	Unlink:             {"unlink", "int(ptr)", availPOSIX},
	Unsetenv:           {"unsetenv", "int(ptr)", availPOSIX},
	Utime:              {"utime", "int(ptr,ptr)", availPOSIX},
	Utimes:             {"utimes", "int(ptr,ptr)", availPOSIX},
	Valloc:             {"valloc", "ptr(size)", availPOSIX},
	VecCalloc:          {"vec_calloc", "ptr(size,size)", availAIX},
	VecFree:            {"vec_free", "void(ptr)", availAIX},
	VecMalloc:          {"vec_malloc", "ptr(size)", availAIX},
	VecRealloc:         {"vec_realloc", "ptr(ptr,size)", availAIX},
	Vfprintf:           {"vfprintf", "int(ptr,ptr,ptr)", availLibc},
	Vfscanf:            {"vfscanf", "int(ptr,ptr,ptr)", availLibc},
	Vprintf:            {"vprintf", "int(ptr,ptr)", availLibc},
	Vscanf:             {"vscanf", "int(ptr,ptr)", availLibc},
	Vsnprintf:          {"vsnprintf", "int(ptr,size,ptr,ptr)", availLibc},
	Vsprintf:           {"vsprintf", "int(ptr,ptr,ptr)", availLibc},
	Vsscanf:            {"vsscanf", "int(ptr,ptr,ptr)", availLibc},
	Wcslen:             {"wcslen", "size(ptr)", availLibc},
	Write:              {"write", "size(int,ptr,size)", availPOSIX},
}
