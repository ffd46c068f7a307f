package vimoption

import "sync"

// optionDef describes one entry of the built-in option table.
type optionDef struct {
	name    string
	short   string
	boolean bool
}

// builtinVersion is the vim version the built-in table was transcribed from.
const builtinVersion = 730

// builtinOptions is the vim 7.3 option list: every long option name, its
// documented abbreviation (empty when vim defines none), and whether the
// option is boolean-valued. Transcribed from the vim 7.3 quickref option
// summary. Note the alias collisions with the modeline markers themselves:
// "vi" abbreviates 'viminfo' and "ex" abbreviates 'exrc'.
var builtinOptions = []optionDef{
	// a
	{"aleph", "al", false}, {"allowrevins", "ari", true}, {"altkeymap", "akm", true},
	{"ambiwidth", "ambw", false}, {"antialias", "anti", true}, {"arabic", "arab", true},
	{"arabicshape", "arshape", true}, {"autochdir", "acd", true}, {"autoindent", "ai", true},
	{"autoread", "ar", true}, {"autowrite", "aw", true}, {"autowriteall", "awa", true},
	// b
	{"background", "bg", false}, {"backspace", "bs", false}, {"backup", "bk", true},
	{"backupcopy", "bkc", false}, {"backupdir", "bdir", false}, {"backupext", "bex", false},
	{"backupskip", "bsk", false}, {"balloondelay", "bdlay", false}, {"ballooneval", "beval", true},
	{"balloonexpr", "bexpr", false}, {"binary", "bin", true}, {"bioskey", "biosk", true},
	{"bomb", "", true}, {"breakat", "brk", false}, {"browsedir", "bsdir", false},
	{"bufhidden", "bh", false}, {"buflisted", "bl", true}, {"buftype", "bt", false},
	// c
	{"casemap", "cmp", false}, {"cdpath", "cd", false}, {"cedit", "", false},
	{"charconvert", "ccv", false}, {"cindent", "cin", true}, {"cinkeys", "cink", false},
	{"cinoptions", "cino", false}, {"cinwords", "cinw", false}, {"clipboard", "cb", false},
	{"cmdheight", "ch", false}, {"cmdwinheight", "cwh", false}, {"colorcolumn", "cc", false},
	{"columns", "co", false}, {"comments", "com", false}, {"commentstring", "cms", false},
	{"compatible", "cp", true}, {"complete", "cpt", false}, {"completefunc", "cfu", false},
	{"completeopt", "cot", false}, {"concealcursor", "cocu", false}, {"conceallevel", "cole", false},
	{"confirm", "cf", true}, {"conskey", "consk", true}, {"copyindent", "ci", true},
	{"cpoptions", "cpo", false}, {"cryptmethod", "cm", false}, {"cscopepathcomp", "cspc", false},
	{"cscopeprg", "csprg", false}, {"cscopequickfix", "csqf", false}, {"cscoperelative", "csre", true},
	{"cscopetag", "cst", true}, {"cscopetagorder", "csto", false}, {"cscopeverbose", "csverb", true},
	{"cursorbind", "crb", true}, {"cursorcolumn", "cuc", true}, {"cursorline", "cul", true},
	// d
	{"debug", "", false}, {"define", "def", false}, {"delcombine", "deco", true},
	{"dictionary", "dict", false}, {"diff", "", true}, {"diffexpr", "dex", false},
	{"diffopt", "dip", false}, {"digraph", "dg", true}, {"directory", "dir", false},
	{"display", "dy", false},
	// e
	{"eadirection", "ead", false}, {"edcompatible", "ed", true}, {"encoding", "enc", false},
	{"endofline", "eol", true}, {"equalalways", "ea", true}, {"equalprg", "ep", false},
	{"errorbells", "eb", true}, {"errorfile", "ef", false}, {"errorformat", "efm", false},
	{"esckeys", "ek", true}, {"eventignore", "ei", false}, {"expandtab", "et", true},
	{"exrc", "ex", true},
	// f
	{"fileencoding", "fenc", false}, {"fileencodings", "fencs", false}, {"fileformat", "ff", false},
	{"fileformats", "ffs", false}, {"filetype", "ft", false}, {"fillchars", "fcs", false},
	{"fkmap", "fk", true}, {"foldclose", "fcl", false}, {"foldcolumn", "fdc", false},
	{"foldenable", "fen", true}, {"foldexpr", "fde", false}, {"foldignore", "fdi", false},
	{"foldlevel", "fdl", false}, {"foldlevelstart", "fdls", false}, {"foldmarker", "fmr", false},
	{"foldmethod", "fdm", false}, {"foldminlines", "fml", false}, {"foldnestmax", "fdn", false},
	{"foldopen", "fdo", false}, {"foldtext", "fdt", false}, {"formatexpr", "fex", false},
	{"formatlistpat", "flp", false}, {"formatoptions", "fo", false}, {"formatprg", "fp", false},
	{"fsync", "fs", true},
	// g
	{"gdefault", "gd", true}, {"grepformat", "gfm", false}, {"grepprg", "gp", false},
	{"guicursor", "gcr", false}, {"guifont", "gfn", false}, {"guifontset", "gfs", false},
	{"guifontwide", "gfw", false}, {"guiheadroom", "ghr", false}, {"guioptions", "go", false},
	{"guipty", "", true}, {"guitablabel", "gtl", false}, {"guitabtooltip", "gtt", false},
	// h
	{"helpfile", "hf", false}, {"helpheight", "hh", false}, {"helplang", "hlg", false},
	{"hidden", "hid", true}, {"highlight", "hl", false}, {"history", "hi", false},
	{"hkmap", "hk", true}, {"hkmapp", "hkp", true}, {"hlsearch", "hls", true},
	// i
	{"icon", "", true}, {"iconstring", "", false}, {"ignorecase", "ic", true},
	{"imactivatekey", "imak", false}, {"imcmdline", "imc", true}, {"imdisable", "imd", true},
	{"iminsert", "imi", false}, {"imsearch", "ims", false}, {"include", "inc", false},
	{"includeexpr", "inex", false}, {"incsearch", "is", true}, {"indentexpr", "inde", false},
	{"indentkeys", "indk", false}, {"infercase", "inf", true}, {"insertmode", "im", true},
	{"isfname", "isf", false}, {"isident", "isi", false}, {"iskeyword", "isk", false},
	{"isprint", "isp", false},
	// j
	{"joinspaces", "js", true},
	// k
	{"key", "", false}, {"keymap", "kmp", false}, {"keymodel", "km", false},
	{"keywordprg", "kp", false},
	// l
	{"langmap", "lmap", false}, {"langmenu", "lm", false}, {"laststatus", "ls", false},
	{"lazyredraw", "lz", true}, {"linebreak", "lbr", true}, {"lines", "", false},
	{"linespace", "lsp", false}, {"lisp", "", true}, {"lispwords", "lw", false},
	{"list", "", true}, {"listchars", "lcs", false}, {"loadplugins", "lpl", true},
	// m
	{"macatsui", "", true}, {"magic", "", true}, {"makeef", "mef", false},
	{"makeprg", "mp", false}, {"matchpairs", "mps", false}, {"matchtime", "mat", false},
	{"maxcombine", "mco", false}, {"maxfuncdepth", "mfd", false}, {"maxmapdepth", "mmd", false},
	{"maxmem", "mm", false}, {"maxmempattern", "mmp", false}, {"maxmemtot", "mmt", false},
	{"menuitems", "mis", false}, {"mkspellmem", "msm", false}, {"modeline", "ml", true},
	{"modelines", "mls", false}, {"modifiable", "ma", true}, {"modified", "mod", true},
	{"more", "", true}, {"mouse", "", false}, {"mousefocus", "mousef", true},
	{"mousehide", "mh", true}, {"mousemodel", "mousem", false}, {"mouseshape", "mouses", false},
	{"mousetime", "mouset", false}, {"mzquantum", "mzq", false},
	// n
	{"nrformats", "nf", false}, {"number", "nu", true}, {"numberwidth", "nuw", false},
	// o
	{"omnifunc", "ofu", false}, {"opendevice", "odev", true}, {"operatorfunc", "opfunc", false},
	{"osfiletype", "oft", false},
	// p
	{"paragraphs", "para", false}, {"paste", "", true}, {"pastetoggle", "pt", false},
	{"patchexpr", "pex", false}, {"patchmode", "pm", false}, {"path", "pa", false},
	{"preserveindent", "pi", true}, {"previewheight", "pvh", false}, {"previewwindow", "pvw", true},
	{"printdevice", "pdev", false}, {"printencoding", "penc", false}, {"printexpr", "pexpr", false},
	{"printfont", "pfn", false}, {"printheader", "pheader", false}, {"printmbcharset", "pmbcs", false},
	{"printmbfont", "pmbfn", false}, {"printoptions", "popt", false}, {"prompt", "", true},
	{"pumheight", "ph", false},
	// q
	{"quoteescape", "qe", false},
	// r
	{"readonly", "ro", true}, {"redrawtime", "rdt", false}, {"relativenumber", "rnu", true},
	{"remap", "", true}, {"report", "", false}, {"restorescreen", "rs", true},
	{"revins", "ri", true}, {"rightleft", "rl", true}, {"rightleftcmd", "rlc", false},
	{"ruler", "ru", true}, {"rulerformat", "ruf", false}, {"runtimepath", "rtp", false},
	// s
	{"scroll", "scr", false}, {"scrollbind", "scb", true}, {"scrolljump", "sj", false},
	{"scrolloff", "so", false}, {"scrollopt", "sbo", false}, {"sections", "sect", false},
	{"secure", "", true}, {"selection", "sel", false}, {"selectmode", "slm", false},
	{"sessionoptions", "ssop", false}, {"shell", "sh", false}, {"shellcmdflag", "shcf", false},
	{"shellpipe", "sp", false}, {"shellquote", "shq", false}, {"shellredir", "srr", false},
	{"shellslash", "ssl", true}, {"shelltemp", "stmp", true}, {"shelltype", "st", false},
	{"shellxquote", "sxq", false}, {"shiftround", "sr", true}, {"shiftwidth", "sw", false},
	{"shortmess", "shm", false}, {"showbreak", "sbr", false}, {"showcmd", "sc", true},
	{"showfulltag", "sft", true}, {"showmatch", "sm", true}, {"showmode", "smd", true},
	{"showtabline", "stal", false}, {"sidescroll", "ss", false}, {"sidescrolloff", "siso", false},
	{"smartcase", "scs", true}, {"smartindent", "si", true}, {"smarttab", "sta", true},
	{"softtabstop", "sts", false}, {"spell", "", true}, {"spellcapcheck", "spc", false},
	{"spellfile", "spf", false}, {"spelllang", "spl", false}, {"spellsuggest", "sps", false},
	{"splitbelow", "sb", true}, {"splitright", "spr", true}, {"startofline", "sol", true},
	{"statusline", "stl", false}, {"suffixes", "su", false}, {"suffixesadd", "sua", false},
	{"swapfile", "swf", true}, {"swapsync", "sws", false}, {"switchbuf", "swb", false},
	{"synmaxcol", "smc", false}, {"syntax", "syn", false},
	// t
	{"tabline", "tal", false}, {"tabpagemax", "tpm", false}, {"tabstop", "ts", false},
	{"tagbsearch", "tbs", true}, {"taglength", "tl", false}, {"tagrelative", "tr", true},
	{"tags", "tag", false}, {"tagstack", "tgst", true}, {"term", "", false},
	{"termbidi", "tbidi", true}, {"termencoding", "tenc", false}, {"terse", "", true},
	{"textauto", "ta", true}, {"textmode", "tx", true}, {"textwidth", "tw", false},
	{"thesaurus", "tsr", false}, {"tildeop", "top", true}, {"timeout", "to", true},
	{"timeoutlen", "tm", false}, {"title", "", true}, {"titlelen", "", false},
	{"titleold", "", false}, {"titlestring", "", false}, {"toolbar", "tb", false},
	{"toolbariconsize", "tbis", false}, {"ttimeout", "", true}, {"ttimeoutlen", "ttm", false},
	{"ttybuiltin", "tbi", true}, {"ttyfast", "tf", true}, {"ttymouse", "ttym", false},
	{"ttyscroll", "tsl", false}, {"ttytype", "tty", false},
	// u
	{"undodir", "udir", false}, {"undofile", "udf", true}, {"undolevels", "ul", false},
	{"undoreload", "ur", false}, {"updatecount", "uc", false}, {"updatetime", "ut", false},
	// v
	{"verbose", "vbs", false}, {"verbosefile", "vfile", false}, {"viewdir", "vdir", false},
	{"viewoptions", "vop", false}, {"viminfo", "vi", false}, {"virtualedit", "ve", false},
	{"visualbell", "vb", true},
	// w
	{"warn", "", true}, {"weirdinvert", "wiv", true}, {"whichwrap", "ww", false},
	{"wildchar", "wc", false}, {"wildcharm", "wcm", false}, {"wildignore", "wig", false},
	{"wildmenu", "wmnu", true}, {"wildmode", "wim", false}, {"wildoptions", "wop", false},
	{"winaltkeys", "wak", false}, {"window", "wi", false}, {"winfixheight", "wfh", true},
	{"winfixwidth", "wfw", true}, {"winheight", "wh", false}, {"winminheight", "wmh", false},
	{"winminwidth", "wmw", false}, {"winwidth", "wiw", false}, {"wrap", "", true},
	{"wrapmargin", "wm", false}, {"wrapscan", "ws", true}, {"write", "", true},
	{"writeany", "wa", true}, {"writebackup", "wb", true}, {"writedelay", "wd", false},
}

var defaultTable = sync.OnceValue(func() *Table {
	names := make([]string, 0, len(builtinOptions))
	aliases := make(map[string]string, len(builtinOptions))
	booleans := make([]string, 0, len(builtinOptions))

	for _, o := range builtinOptions {
		names = append(names, o.name)
		if o.short != "" {
			aliases[o.short] = o.name
		}

		if o.boolean {
			booleans = append(booleans, o.name)
		}
	}

	t, err := NewTable(names, aliases, booleans)
	if err != nil {
		panic(err)
	}

	t.version = builtinVersion

	return t
})

// Default returns the shared built-in vim 7.3 option table.
func Default() *Table {
	return defaultTable()
}
